package codec

import "testing"

func TestEncodings(t *testing.T) {
	encs := Encodings()
	if len(encs) != 1 || encs[0] != EncodingJPEG {
		t.Fatalf("Encodings() = %v", encs)
	}
}

func TestCapability(t *testing.T) {
	c, ok := CapabilityFor(EncodingJPEG)
	if !ok {
		t.Fatal("no jpeg capability")
	}
	if c.MinWidth != 16 || c.MaxWidth != 16384 {
		t.Errorf("width bounds %d..%d", c.MinWidth, c.MaxWidth)
	}
	if len(c.InputColorspaces) != 9 {
		t.Errorf("%d input colorspaces", len(c.InputColorspaces))
	}
	if _, ok := CapabilityFor("h264"); ok {
		t.Error("unknown encoding has a capability")
	}
}

func TestOutputColorspacesIdentity(t *testing.T) {
	for _, cs := range InputColorspaces(EncodingJPEG) {
		out := OutputColorspaces(EncodingJPEG, cs)
		if len(out) != 1 || out[0] != cs {
			t.Errorf("OutputColorspaces(%v) = %v", cs, out)
		}
	}
	if out := OutputColorspaces(EncodingJPEG, PixelFormat(99)); out != nil {
		t.Errorf("unknown colorspace mapped to %v", out)
	}
}
