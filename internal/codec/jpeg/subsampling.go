package jpeg

import (
	"github.com/junsooki/AirCast/internal/codec"
	"github.com/junsooki/AirCast/internal/turbojpeg"
)

// ChooseSubsampling maps an encode quality to a chroma subsampling mode.
// Low quality gives up chroma resolution first, since that is the
// cheapest fidelity to lose.
func ChooseSubsampling(quality int) turbojpeg.Subsampling {
	switch {
	case quality < 50:
		return turbojpeg.Subsampling420
	case quality < 80:
		return turbojpeg.Subsampling422
	default:
		return turbojpeg.Subsampling444
	}
}

// clampQuality bounds quality to [0, 99]. Quality 100 selects lossless
// operation in other JPEG variants, which this encoder does not produce,
// so it is clamped down to 99.
func clampQuality(quality int) int {
	if quality < 0 {
		return 0
	}
	if quality > 99 {
		return 99
	}
	return quality
}

// packedFormat maps a packed raster layout to its compressor pixel
// format code.
func packedFormat(f codec.PixelFormat) (turbojpeg.PixelFormat, bool) {
	switch f {
	case codec.FormatRGB:
		return turbojpeg.PixelFormatRGB, true
	case codec.FormatBGR:
		return turbojpeg.PixelFormatBGR, true
	case codec.FormatRGBX:
		return turbojpeg.PixelFormatRGBX, true
	case codec.FormatBGRX:
		return turbojpeg.PixelFormatBGRX, true
	case codec.FormatXBGR:
		return turbojpeg.PixelFormatXBGR, true
	case codec.FormatXRGB:
		return turbojpeg.PixelFormatXRGB, true
	}
	return 0, false
}

// planarSubsampling maps a planar layout to the subsampling mode it
// already encodes. Unlike the packed path, quality plays no part here:
// the plane geometry fixes the chroma ratio.
func planarSubsampling(f codec.PixelFormat) (turbojpeg.Subsampling, bool) {
	switch f {
	case codec.FormatYUV420P:
		return turbojpeg.Subsampling420, true
	case codec.FormatYUV422P:
		return turbojpeg.Subsampling422, true
	case codec.FormatYUV444P:
		return turbojpeg.Subsampling444, true
	}
	return 0, false
}
