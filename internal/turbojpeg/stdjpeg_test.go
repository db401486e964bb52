//go:build !turbojpeg

package turbojpeg

import (
	"bytes"
	"errors"
	"image/jpeg"
	"testing"
)

func gradient(w, h, bpp int) []byte {
	pix := make([]byte, w*h*bpp)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := (y*w + x) * bpp
			pix[off] = byte(x)
			pix[off+1] = byte(y)
			pix[off+2] = byte(x + y)
		}
	}
	return pix
}

func TestCompressPacked(t *testing.T) {
	c, err := NewCompressor()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	data, err := c.Compress(gradient(64, 48, 4), 64, 64*4, 48, PixelFormatBGRX, Subsampling420, 75)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output not decodable: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Errorf("output is %dx%d", cfg.Width, cfg.Height)
	}
}

func TestCompressPlanes(t *testing.T) {
	const w, h = 64, 48
	planes := [3][]byte{
		make([]byte, w*h),
		make([]byte, (w/2)*(h/2)),
		make([]byte, (w/2)*(h/2)),
	}
	for i := range planes {
		for j := range planes[i] {
			planes[i][j] = byte(j + i*17)
		}
	}
	c, err := NewCompressor()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	data, err := c.CompressPlanes(planes, w, [3]int{w, w / 2, w / 2}, h, Subsampling420, 75)
	if err != nil {
		t.Fatalf("CompressPlanes: %v", err)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output not decodable: %v", err)
	}
	if cfg.Width != w || cfg.Height != h {
		t.Errorf("output is %dx%d", cfg.Width, cfg.Height)
	}
}

func TestCompressPlanesMismatchedStrides(t *testing.T) {
	const w, h = 32, 32
	planes := [3][]byte{
		make([]byte, w*h),
		make([]byte, 20*(h/2)),
		make([]byte, 24*(h/2)),
	}
	c, err := NewCompressor()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if _, err := c.CompressPlanes(planes, w, [3]int{w, 20, 24}, h, Subsampling420, 75); err != nil {
		t.Fatalf("CompressPlanes with differing chroma strides: %v", err)
	}
}

func TestCloseTwice(t *testing.T) {
	before := OpenCompressors()
	c, err := NewCompressor()
	if err != nil {
		t.Fatal(err)
	}
	if OpenCompressors() != before+1 {
		t.Fatal("handle not counted")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := c.Close(); !errors.Is(err, ErrClosed) {
		t.Fatalf("second Close: %v, want ErrClosed", err)
	}
	if OpenCompressors() != before {
		t.Fatal("double Close changed the handle count")
	}
}

func TestCompressAfterClose(t *testing.T) {
	c, err := NewCompressor()
	if err != nil {
		t.Fatal(err)
	}
	c.Close()
	if _, err := c.Compress(gradient(16, 16, 4), 16, 16*4, 16, PixelFormatBGRX, Subsampling444, 75); !errors.Is(err, ErrClosed) {
		t.Fatalf("Compress after Close: %v, want ErrClosed", err)
	}
}
