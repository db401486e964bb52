package codec

import "fmt"

// PixelFormat identifies a supported raster layout: either a packed RGB
// variant (one interleaved buffer) or a planar YUV variant (three planes).
type PixelFormat int

const (
	FormatBGRX PixelFormat = iota
	FormatRGBX
	FormatXBGR
	FormatXRGB
	FormatRGB
	FormatBGR
	FormatYUV420P
	FormatYUV422P
	FormatYUV444P
)

var formatNames = map[PixelFormat]string{
	FormatBGRX:    "BGRX",
	FormatRGBX:    "RGBX",
	FormatXBGR:    "XBGR",
	FormatXRGB:    "XRGB",
	FormatRGB:     "RGB",
	FormatBGR:     "BGR",
	FormatYUV420P: "YUV420P",
	FormatYUV422P: "YUV422P",
	FormatYUV444P: "YUV444P",
}

func (f PixelFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// ParsePixelFormat maps a format tag like "BGRX" or "YUV420P" to its
// PixelFormat. Unknown tags are an error.
func ParsePixelFormat(tag string) (PixelFormat, error) {
	for f, name := range formatNames {
		if name == tag {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown pixel format %q", tag)
}

// Planar reports whether the format stores its channels in separate
// Y, U and V planes.
func (f PixelFormat) Planar() bool {
	switch f {
	case FormatYUV420P, FormatYUV422P, FormatYUV444P:
		return true
	}
	return false
}

// BytesPerPixel returns the packed pixel group size. Planar formats are
// sampled one byte per plane and return 1.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case FormatRGB, FormatBGR:
		return 3
	case FormatBGRX, FormatRGBX, FormatXBGR, FormatXRGB:
		return 4
	}
	return 1
}

// ChannelOffsets returns the byte offsets of the red, green and blue
// samples within one packed pixel group.
func (f PixelFormat) ChannelOffsets() (r, g, b int) {
	switch f {
	case FormatRGB, FormatRGBX:
		return 0, 1, 2
	case FormatBGR, FormatBGRX:
		return 2, 1, 0
	case FormatXBGR:
		return 3, 2, 1
	case FormatXRGB:
		return 1, 2, 3
	}
	return 0, 1, 2
}

// PlaneDivisors returns the horizontal and vertical chroma subsampling
// divisors for the given plane index (0 = Y, 1 = U, 2 = V). The luma
// plane and all packed formats are always full resolution.
func (f PixelFormat) PlaneDivisors(plane int) (h, v int) {
	if plane == 0 || !f.Planar() {
		return 1, 1
	}
	switch f {
	case FormatYUV420P:
		return 2, 2
	case FormatYUV422P:
		return 2, 1
	default: // YUV444P
		return 1, 1
	}
}
