package jpeg

import (
	"fmt"

	"github.com/junsooki/AirCast/internal/codec"
)

// Result is what a one-shot Encode hands back to the framework: the
// tagged payload, the client-visible options, the frame geometry, a
// zero offset placeholder and the fixed 24-bit depth of the stream.
type Result struct {
	Data          *codec.Compressed
	ClientOptions map[string]any
	Width         int
	Height        int
	Offset        int
	BitsPerPixel  int
}

// Encode compresses a single packed-pixel frame without a persistent
// session: a fresh compressor is acquired, used once and always
// released, whether or not the encode succeeds. Planar frames need an
// Encoder session and are rejected here.
func Encode(frame *codec.Frame, quality, speed int) (*Result, error) {
	if frame == nil {
		return nil, fmt.Errorf("jpeg: nil frame")
	}
	if frame.Format.Planar() {
		return nil, fmt.Errorf("jpeg: one-shot encode does not accept planar %s frames", frame.Format)
	}
	quality = clampQuality(quality)

	enc, err := NewEncoder(Options{
		Width:   frame.Width,
		Height:  frame.Height,
		Format:  frame.Format,
		Quality: quality,
		Speed:   speed,
	})
	if err != nil {
		return nil, err
	}
	defer enc.Clean()

	data, _, err := enc.CompressImage(frame, quality, speed)
	if err != nil {
		return nil, err
	}
	return &Result{
		Data:          data,
		ClientOptions: map[string]any{"quality": quality},
		Width:         frame.Width,
		Height:        frame.Height,
		Offset:        0,
		BitsPerPixel:  24,
	}, nil
}
