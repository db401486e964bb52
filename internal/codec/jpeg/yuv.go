package jpeg

import (
	"fmt"

	"github.com/junsooki/AirCast/internal/codec"
)

// encodeYUV compresses a planar frame from its three plane buffers. The
// subsampling mode comes from the plane layout itself, not from quality:
// planar callers have already fixed their chroma ratio by handing over
// subsampled planes. All three plane views are validated and acquired
// together before the single compression call.
func (e *Encoder) encodeYUV(frame *codec.Frame, quality, speed int) ([]byte, error) {
	samp, ok := planarSubsampling(frame.Format)
	if !ok {
		return nil, fmt.Errorf("jpeg: %s is not a planar layout", frame.Format)
	}
	views, err := frame.PlaneViews()
	if err != nil {
		return nil, fmt.Errorf("jpeg: %w", err)
	}

	var planes [3][]byte
	var strides [3]int
	copy(planes[:], views)
	copy(strides[:], frame.Strides)

	data, err := e.comp.CompressPlanes(planes, frame.Width, strides, frame.Height, samp, quality)
	if err != nil {
		return nil, fmt.Errorf("jpeg: compressing %dx%d %s planes (strides %d/%d/%d, quality %d): %w",
			frame.Width, frame.Height, frame.Format, strides[0], strides[1], strides[2], quality, err)
	}
	return data, nil
}
