// Package jpeg implements the JPEG encoder plugin: a quality-driven
// chroma subsampling policy, a packed-RGB compression path, a planar-YUV
// compression path, and the compressor-handle lifecycle wrapping them.
package jpeg

import (
	"errors"
	"fmt"
	"log"

	"github.com/junsooki/AirCast/internal/codec"
	"github.com/junsooki/AirCast/internal/turbojpeg"
)

// ErrClosed is returned by CompressImage after Clean has released the
// encoder's compressor.
var ErrClosed = errors.New("jpeg: encoder is closed")

// Options configures an encoder session. Quality and Speed are the
// session defaults; both can be overridden per frame. Scaling other
// than 1:1 is rejected, this encoder never resizes.
type Options struct {
	Width    int
	Height   int
	Format   codec.PixelFormat
	Quality  int
	Speed    int
	ScaleNum int // 0 means 1
	ScaleDen int // 0 means 1
}

// Encoder owns one compressor handle across the frames of a stream
// session. It is not safe for concurrent CompressImage calls; callers
// needing parallel encodes use one Encoder per stream.
type Encoder struct {
	comp    *turbojpeg.Compressor
	width   int
	height  int
	format  codec.PixelFormat
	quality int
	speed   int
	frames  int
}

// NewEncoder validates the session configuration and acquires the
// compressor handle. A configuration error or a failed handle
// acquisition is fatal for the session.
func NewEncoder(opts Options) (*Encoder, error) {
	if !codec.Supports(codec.EncodingJPEG, opts.Format) {
		return nil, fmt.Errorf("jpeg: unsupported input colorspace %s", opts.Format)
	}
	if opts.Width < codec.MinDimension || opts.Width > codec.MaxDimension ||
		opts.Height < codec.MinDimension || opts.Height > codec.MaxDimension {
		return nil, fmt.Errorf("jpeg: %dx%d outside supported range %dx%d..%dx%d",
			opts.Width, opts.Height,
			codec.MinDimension, codec.MinDimension, codec.MaxDimension, codec.MaxDimension)
	}
	num, den := opts.ScaleNum, opts.ScaleDen
	if num == 0 {
		num = 1
	}
	if den == 0 {
		den = 1
	}
	if num != den {
		return nil, fmt.Errorf("jpeg: scaling %d/%d requested but only 1:1 is supported", num, den)
	}

	comp, err := turbojpeg.NewCompressor()
	if err != nil {
		return nil, fmt.Errorf("jpeg: acquiring compressor: %w", err)
	}
	return &Encoder{
		comp:    comp,
		width:   opts.Width,
		height:  opts.Height,
		format:  opts.Format,
		quality: clampQuality(opts.Quality),
		speed:   opts.Speed,
	}, nil
}

// IsReady reports whether the encoder still holds its compressor.
func (e *Encoder) IsReady() bool { return e.comp != nil }

// IsClosed reports whether Clean has run.
func (e *Encoder) IsClosed() bool { return e.comp == nil }

// Frames returns the number of successfully compressed frames.
func (e *Encoder) Frames() int { return e.frames }

// Info returns session details for logging and diagnostics.
func (e *Encoder) Info() map[string]any {
	return map[string]any{
		"encoding": codec.EncodingJPEG,
		"format":   e.format.String(),
		"width":    e.width,
		"height":   e.height,
		"quality":  e.quality,
		"speed":    e.speed,
		"frames":   e.frames,
	}
}

// CompressImage encodes one frame and returns the compressed payload
// plus an (empty) side-channel metadata map. Negative quality or speed
// select the session defaults. Frames are dispatched to the packed or
// planar path by their pixel format; a failed encode returns no data
// and does not count the frame.
func (e *Encoder) CompressImage(frame *codec.Frame, quality, speed int) (*codec.Compressed, map[string]any, error) {
	if e.comp == nil {
		return nil, nil, ErrClosed
	}
	if frame == nil {
		return nil, nil, errors.New("jpeg: nil frame")
	}
	if frame.Width != e.width || frame.Height != e.height {
		return nil, nil, fmt.Errorf("jpeg: frame is %dx%d but session was set up for %dx%d (scaling is not supported)",
			frame.Width, frame.Height, e.width, e.height)
	}
	if quality < 0 {
		quality = e.quality
	}
	quality = clampQuality(quality)
	if speed < 0 {
		speed = e.speed
	}

	var (
		data []byte
		err  error
	)
	if frame.Format.Planar() {
		data, err = e.encodeYUV(frame, quality, speed)
	} else {
		data, err = e.encodeRGB(frame, quality, speed)
	}
	if err != nil {
		return nil, nil, err
	}
	e.frames++
	return &codec.Compressed{Encoding: codec.EncodingJPEG, Data: data}, map[string]any{}, nil
}

// Clean releases the compressor handle. The first call closes the
// native handle; a release failure is logged but the encoder still
// transitions to closed. Further calls are no-ops.
func (e *Encoder) Clean() {
	if e.comp == nil {
		return
	}
	if err := e.comp.Close(); err != nil {
		log.Printf("jpeg: releasing compressor: %v", err)
	}
	e.comp = nil
}

// ErrorText returns the text of the most recent compressor error.
func ErrorText() string {
	return turbojpeg.LastError()
}
