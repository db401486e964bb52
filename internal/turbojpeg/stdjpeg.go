//go:build !turbojpeg

package turbojpeg

import (
	"bytes"
	"image"
	"image/jpeg"
)

// Compressor is the portable stand-in for a native TurboJPEG handle,
// built on image/jpeg. It honors geometry, strides and quality; the
// requested chroma subsampling is accepted but the standard encoder
// always emits 4:2:0 for color images.
type Compressor struct {
	closed bool
}

// NewCompressor allocates a compressor handle.
func NewCompressor() (*Compressor, error) {
	live.Add(1)
	return &Compressor{}, nil
}

// Compress encodes one packed-pixel frame and returns the JPEG stream.
func (c *Compressor) Compress(pix []byte, width, stride, height int, pf PixelFormat, samp Subsampling, quality int) ([]byte, error) {
	if c.closed {
		return nil, ErrClosed
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	roff, goff, boff := rgbOffsets(pf)
	ps := pf.PixelSize()
	for y := 0; y < height; y++ {
		src := pix[y*stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			dst[x*4+0] = src[x*ps+roff]
			dst[x*4+1] = src[x*ps+goff]
			dst[x*4+2] = src[x*ps+boff]
			dst[x*4+3] = 0xFF
		}
	}
	return c.encode(img, quality)
}

// CompressPlanes encodes one planar YUV frame from three independent
// plane buffers.
func (c *Compressor) CompressPlanes(planes [3][]byte, width int, strides [3]int, height int, samp Subsampling, quality int) ([]byte, error) {
	if c.closed {
		return nil, ErrClosed
	}
	var ratio image.YCbCrSubsampleRatio
	cw := width
	switch samp {
	case Subsampling420:
		ratio = image.YCbCrSubsampleRatio420
		cw = (width + 1) / 2
	case Subsampling422:
		ratio = image.YCbCrSubsampleRatio422
		cw = (width + 1) / 2
	default:
		ratio = image.YCbCrSubsampleRatio444
	}

	img := &image.YCbCr{
		Y:              planes[0],
		Cb:             planes[1],
		Cr:             planes[2],
		YStride:        strides[0],
		CStride:        strides[1],
		SubsampleRatio: ratio,
		Rect:           image.Rect(0, 0, width, height),
	}
	if strides[1] != strides[2] {
		// image.YCbCr shares one chroma stride, so repack both chroma
		// planes tightly when the caller's strides disagree.
		ch := height
		if samp == Subsampling420 {
			ch = (height + 1) / 2
		}
		img.Cb = repack(planes[1], strides[1], cw, ch)
		img.Cr = repack(planes[2], strides[2], cw, ch)
		img.CStride = cw
	}
	return c.encode(img, quality)
}

func (c *Compressor) encode(img image.Image, quality int) ([]byte, error) {
	if quality < 1 {
		quality = 1
	} else if quality > 100 {
		quality = 100
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, newNativeError("jpeg.Encode", -1, err.Error())
	}
	if buf.Len() == 0 {
		return nil, ErrEmptyOutput
	}
	return buf.Bytes(), nil
}

// Close releases the handle. Closing twice is an error.
func (c *Compressor) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	live.Add(-1)
	return nil
}

func rgbOffsets(pf PixelFormat) (r, g, b int) {
	switch pf {
	case PixelFormatRGB, PixelFormatRGBX:
		return 0, 1, 2
	case PixelFormatBGR, PixelFormatBGRX:
		return 2, 1, 0
	case PixelFormatXBGR:
		return 3, 2, 1
	case PixelFormatXRGB:
		return 1, 2, 3
	}
	return 0, 1, 2
}

func repack(plane []byte, stride, w, h int) []byte {
	out := make([]byte, w*h)
	for y := 0; y < h; y++ {
		copy(out[y*w:(y+1)*w], plane[y*stride:y*stride+w])
	}
	return out
}
