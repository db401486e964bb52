package codec

import "testing"

func TestParsePixelFormat(t *testing.T) {
	for f, name := range formatNames {
		got, err := ParsePixelFormat(name)
		if err != nil {
			t.Fatalf("ParsePixelFormat(%q): %v", name, err)
		}
		if got != f {
			t.Errorf("ParsePixelFormat(%q) = %v, want %v", name, got, f)
		}
	}
	if _, err := ParsePixelFormat("NV12"); err == nil {
		t.Error("ParsePixelFormat(NV12) should fail")
	}
}

func TestPlaneDivisors(t *testing.T) {
	tests := []struct {
		format PixelFormat
		plane  int
		h, v   int
	}{
		{FormatYUV420P, 0, 1, 1},
		{FormatYUV420P, 1, 2, 2},
		{FormatYUV420P, 2, 2, 2},
		{FormatYUV422P, 1, 2, 1},
		{FormatYUV422P, 2, 2, 1},
		{FormatYUV444P, 1, 1, 1},
		{FormatBGRX, 0, 1, 1},
		{FormatBGRX, 1, 1, 1},
	}
	for _, tt := range tests {
		h, v := tt.format.PlaneDivisors(tt.plane)
		if h != tt.h || v != tt.v {
			t.Errorf("%v plane %d divisors = %d,%d, want %d,%d", tt.format, tt.plane, h, v, tt.h, tt.v)
		}
	}
}

func TestBytesPerPixel(t *testing.T) {
	if got := FormatRGB.BytesPerPixel(); got != 3 {
		t.Errorf("RGB bpp = %d", got)
	}
	if got := FormatBGRX.BytesPerPixel(); got != 4 {
		t.Errorf("BGRX bpp = %d", got)
	}
	if got := FormatYUV420P.BytesPerPixel(); got != 1 {
		t.Errorf("YUV420P bpp = %d", got)
	}
}

func TestChannelOffsets(t *testing.T) {
	tests := []struct {
		format  PixelFormat
		r, g, b int
	}{
		{FormatRGB, 0, 1, 2},
		{FormatBGR, 2, 1, 0},
		{FormatRGBX, 0, 1, 2},
		{FormatBGRX, 2, 1, 0},
		{FormatXBGR, 3, 2, 1},
		{FormatXRGB, 1, 2, 3},
	}
	for _, tt := range tests {
		r, g, b := tt.format.ChannelOffsets()
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("%v offsets = %d,%d,%d, want %d,%d,%d", tt.format, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
