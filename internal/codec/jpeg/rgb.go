package jpeg

import (
	"fmt"

	"github.com/junsooki/AirCast/internal/codec"
)

// encodeRGB compresses a packed-pixel frame. The chroma subsampling is
// chosen from the requested quality; the frame's buffer is validated
// against its declared stride before the compressor sees it.
func (e *Encoder) encodeRGB(frame *codec.Frame, quality, speed int) ([]byte, error) {
	pf, ok := packedFormat(frame.Format)
	if !ok {
		return nil, fmt.Errorf("jpeg: %s is not a packed layout", frame.Format)
	}
	samp := ChooseSubsampling(quality)

	pix, err := frame.Plane(0)
	if err != nil {
		return nil, fmt.Errorf("jpeg: %w", err)
	}
	data, err := e.comp.Compress(pix, frame.Width, frame.Strides[0], frame.Height, pf, samp, quality)
	if err != nil {
		return nil, fmt.Errorf("jpeg: compressing %dx%d %s frame (stride %d, subsampling %s, quality %d): %w",
			frame.Width, frame.Height, frame.Format, frame.Strides[0], samp, quality, err)
	}
	return data, nil
}
