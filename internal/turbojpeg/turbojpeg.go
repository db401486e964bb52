// Package turbojpeg wraps a TurboJPEG-style compressor behind a small
// handle API. Builds tagged "turbojpeg" link against libjpeg-turbo via
// cgo; all other builds use a portable stand-in on top of image/jpeg so
// the rest of the pipeline works (and tests run) everywhere.
package turbojpeg

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Subsampling selects the chroma subsampling of the output stream.
// The values match the TJSAMP_* constants of the TurboJPEG C API.
type Subsampling int

const (
	Subsampling444 Subsampling = 0
	Subsampling422 Subsampling = 1
	Subsampling420 Subsampling = 2
)

func (s Subsampling) String() string {
	switch s {
	case Subsampling444:
		return "4:4:4"
	case Subsampling422:
		return "4:2:2"
	case Subsampling420:
		return "4:2:0"
	}
	return fmt.Sprintf("Subsampling(%d)", int(s))
}

// PixelFormat describes a packed source layout. The values match the
// TJPF_* constants of the TurboJPEG C API.
type PixelFormat int

const (
	PixelFormatRGB  PixelFormat = 0
	PixelFormatBGR  PixelFormat = 1
	PixelFormatRGBX PixelFormat = 2
	PixelFormatBGRX PixelFormat = 3
	PixelFormatXBGR PixelFormat = 4
	PixelFormatXRGB PixelFormat = 5
)

// PixelSize returns the bytes per pixel group of a packed format.
func (f PixelFormat) PixelSize() int {
	switch f {
	case PixelFormatRGB, PixelFormatBGR:
		return 3
	default:
		return 4
	}
}

var (
	// ErrClosed is returned when a compressor handle is used after Close.
	ErrClosed = errors.New("turbojpeg: compressor closed")
	// ErrEmptyOutput is returned when the compressor reports success but
	// produced no bytes.
	ErrEmptyOutput = errors.New("turbojpeg: compressor returned empty output")
)

// NativeError reports a non-zero status from the compression library.
type NativeError struct {
	Op     string
	Status int
	Text   string
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("turbojpeg: %s failed with status %d: %s", e.Op, e.Status, e.Text)
}

func newNativeError(op string, status int, text string) *NativeError {
	setLastError(text)
	return &NativeError{Op: op, Status: status, Text: text}
}

var (
	lastErrMu sync.Mutex
	lastErr   string
)

func setLastError(text string) {
	lastErrMu.Lock()
	lastErr = text
	lastErrMu.Unlock()
}

// LastError returns the text of the most recent compressor error, or ""
// if no compression has failed yet.
func LastError() string {
	lastErrMu.Lock()
	defer lastErrMu.Unlock()
	return lastErr
}

var live atomic.Int64

// OpenCompressors returns the number of compressor handles currently
// allocated and not yet closed.
func OpenCompressors() int64 {
	return live.Load()
}
