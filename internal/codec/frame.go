package codec

import (
	"fmt"
	"time"
)

// Frame describes one caller-owned raster frame handed to an encoder.
// Packed formats carry a single buffer and stride; planar formats carry
// exactly three planes (Y, U, V), each with its own stride. The encoder
// only reads the buffers for the duration of a call and never retains
// a reference.
type Frame struct {
	Format  PixelFormat
	Width   int
	Height  int
	Strides []int
	Planes  [][]byte

	Timestamp time.Time
}

// PlaneCount returns 3 for planar formats and 1 for packed ones.
func (f *Frame) PlaneCount() int {
	if f.Format.Planar() {
		return 3
	}
	return 1
}

// PlaneDims returns the valid pixel dimensions of plane i after applying
// the format's subsampling divisors. Odd frame dimensions round up, so a
// 33 pixel wide 4:2:0 frame has 17 chroma columns.
func (f *Frame) PlaneDims(i int) (w, h int) {
	hdiv, vdiv := f.Format.PlaneDivisors(i)
	return (f.Width + hdiv - 1) / hdiv, (f.Height + vdiv - 1) / vdiv
}

// Plane validates plane i against its declared stride and buffer length
// and returns a view covering exactly the bytes the compressor may read.
// The view stays valid only for the duration of the enclosing call.
func (f *Frame) Plane(i int) ([]byte, error) {
	if i < 0 || i >= f.PlaneCount() || i >= len(f.Planes) || i >= len(f.Strides) {
		return nil, fmt.Errorf("%s frame has no plane %d", f.Format, i)
	}
	pw, ph := f.PlaneDims(i)
	stride := f.Strides[i]
	minStride := pw
	if !f.Format.Planar() {
		minStride = pw * f.Format.BytesPerPixel()
	}
	if stride < minStride {
		return nil, fmt.Errorf("%s plane %d stride %d too small: %dpx needs at least %d bytes per row",
			f.Format, i, stride, pw, minStride)
	}
	need := stride * ph
	if got := len(f.Planes[i]); got < need {
		return nil, fmt.Errorf("%s plane %d buffer too small: %d bytes for %dx%d at stride %d, need %d",
			f.Format, i, got, pw, ph, stride, need)
	}
	return f.Planes[i][:need], nil
}

// PlaneViews validates and returns all of the frame's plane views
// together (Y, U, V order for planar formats), so a multi-plane
// compression call either sees every buffer or none.
func (f *Frame) PlaneViews() ([][]byte, error) {
	views := make([][]byte, f.PlaneCount())
	for i := range views {
		view, err := f.Plane(i)
		if err != nil {
			return nil, err
		}
		views[i] = view
	}
	return views, nil
}
