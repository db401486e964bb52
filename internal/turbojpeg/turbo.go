//go:build turbojpeg

package turbojpeg

/*
#cgo LDFLAGS: -lturbojpeg
#include <stdlib.h>
#include <turbojpeg.h>
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// Compressor owns one native TurboJPEG compressor handle. A handle must
// not be used by two compression calls at the same time.
type Compressor struct {
	handle C.tjhandle
}

// NewCompressor allocates a native compressor handle.
func NewCompressor() (*Compressor, error) {
	h := C.tjInitCompress()
	if h == nil {
		return nil, newNativeError("tjInitCompress", -1, C.GoString(C.tjGetErrorStr()))
	}
	live.Add(1)
	return &Compressor{handle: h}, nil
}

// Compress encodes one packed-pixel frame and returns the JPEG stream.
func (c *Compressor) Compress(pix []byte, width, stride, height int, pf PixelFormat, samp Subsampling, quality int) ([]byte, error) {
	if c.handle == nil {
		return nil, ErrClosed
	}
	var out *C.uchar
	var outSize C.ulong
	r := C.tjCompress2(c.handle,
		(*C.uchar)(unsafe.Pointer(&pix[0])),
		C.int(width), C.int(stride), C.int(height), C.int(pf),
		&out, &outSize, C.int(samp), C.int(quality), 0)
	if r != 0 {
		if out != nil {
			C.tjFree(out)
		}
		return nil, newNativeError("tjCompress2", int(r), C.GoString(C.tjGetErrorStr2(c.handle)))
	}
	if out == nil || outSize == 0 {
		if out != nil {
			C.tjFree(out)
		}
		return nil, ErrEmptyOutput
	}
	data := C.GoBytes(unsafe.Pointer(out), C.int(outSize))
	C.tjFree(out)
	return data, nil
}

// CompressPlanes encodes one planar YUV frame from three independent
// plane buffers. All three plane views must stay valid until the call
// returns.
func (c *Compressor) CompressPlanes(planes [3][]byte, width int, strides [3]int, height int, samp Subsampling, quality int) ([]byte, error) {
	if c.handle == nil {
		return nil, ErrClosed
	}
	// The plane-pointer array itself crosses into C, so the planes it
	// points at must be pinned for the duration of the call.
	var pin runtime.Pinner
	defer pin.Unpin()
	var srcPlanes [3]*C.uchar
	for i := range planes {
		pin.Pin(&planes[i][0])
		srcPlanes[i] = (*C.uchar)(unsafe.Pointer(&planes[i][0]))
	}
	cstrides := [3]C.int{C.int(strides[0]), C.int(strides[1]), C.int(strides[2])}
	var out *C.uchar
	var outSize C.ulong
	r := C.tjCompressFromYUVPlanes(c.handle,
		&srcPlanes[0], C.int(width), &cstrides[0], C.int(height), C.int(samp),
		&out, &outSize, C.int(quality), 0)
	if r != 0 {
		if out != nil {
			C.tjFree(out)
		}
		return nil, newNativeError("tjCompressFromYUVPlanes", int(r), C.GoString(C.tjGetErrorStr2(c.handle)))
	}
	if out == nil || outSize == 0 {
		if out != nil {
			C.tjFree(out)
		}
		return nil, ErrEmptyOutput
	}
	data := C.GoBytes(unsafe.Pointer(out), C.int(outSize))
	C.tjFree(out)
	return data, nil
}

// Close destroys the native handle. Closing twice is an error.
func (c *Compressor) Close() error {
	if c.handle == nil {
		return ErrClosed
	}
	r := C.tjDestroy(c.handle)
	c.handle = nil
	live.Add(-1)
	if r != 0 {
		return newNativeError("tjDestroy", int(r), C.GoString(C.tjGetErrorStr()))
	}
	return nil
}
