package codec

import (
	"strings"
	"testing"
)

func packedFrame(w, h, stride, buflen int) *Frame {
	return &Frame{
		Format:  FormatBGRX,
		Width:   w,
		Height:  h,
		Strides: []int{stride},
		Planes:  [][]byte{make([]byte, buflen)},
	}
}

func TestPlanePacked(t *testing.T) {
	f := packedFrame(32, 32, 32*4, 32*4*32)
	view, err := f.Plane(0)
	if err != nil {
		t.Fatalf("Plane(0): %v", err)
	}
	if len(view) != 32*4*32 {
		t.Errorf("view length = %d, want %d", len(view), 32*4*32)
	}
}

func TestPlanePackedShortBuffer(t *testing.T) {
	f := packedFrame(32, 32, 32*4, 32*4*32-1)
	if _, err := f.Plane(0); err == nil {
		t.Fatal("short buffer accepted")
	} else if !strings.Contains(err.Error(), "buffer too small") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPlanePackedShortStride(t *testing.T) {
	f := packedFrame(32, 32, 32*4-1, 32*4*32)
	if _, err := f.Plane(0); err == nil {
		t.Fatal("short stride accepted")
	} else if !strings.Contains(err.Error(), "stride") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPlaneDimsOddSizes(t *testing.T) {
	f := &Frame{Format: FormatYUV420P, Width: 33, Height: 17}
	w, h := f.PlaneDims(1)
	if w != 17 || h != 9 {
		t.Errorf("chroma dims = %dx%d, want 17x9", w, h)
	}
	w, h = f.PlaneDims(0)
	if w != 33 || h != 17 {
		t.Errorf("luma dims = %dx%d, want 33x17", w, h)
	}
}

func yuvFrame(w, h int) *Frame {
	f := &Frame{
		Format:  FormatYUV420P,
		Width:   w,
		Height:  h,
		Strides: make([]int, 3),
		Planes:  make([][]byte, 3),
	}
	for i := 0; i < 3; i++ {
		pw, ph := f.PlaneDims(i)
		f.Strides[i] = pw
		f.Planes[i] = make([]byte, pw*ph)
	}
	return f
}

func TestPlaneViews(t *testing.T) {
	f := yuvFrame(64, 48)
	views, err := f.PlaneViews()
	if err != nil {
		t.Fatalf("PlaneViews: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("got %d views", len(views))
	}
	if len(views[0]) != 64*48 || len(views[1]) != 32*24 || len(views[2]) != 32*24 {
		t.Errorf("view sizes = %d/%d/%d", len(views[0]), len(views[1]), len(views[2]))
	}
}

func TestPlaneViewsBadChromaStride(t *testing.T) {
	f := yuvFrame(64, 48)
	f.Strides[1] = 64/2 - 1 // below width/2
	if _, err := f.PlaneViews(); err == nil {
		t.Fatal("undersized U stride accepted")
	}
}

func TestPlaneViewsShortChromaBuffer(t *testing.T) {
	f := yuvFrame(64, 48)
	f.Planes[2] = f.Planes[2][:len(f.Planes[2])-1]
	if _, err := f.PlaneViews(); err == nil {
		t.Fatal("undersized V buffer accepted")
	}
}

func TestPlaneOutOfRange(t *testing.T) {
	f := packedFrame(32, 32, 32*4, 32*4*32)
	if _, err := f.Plane(1); err == nil {
		t.Fatal("packed frame plane 1 should not exist")
	}
}
