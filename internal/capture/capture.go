package capture

import "github.com/junsooki/AirCast/internal/codec"

// Source produces raster frames for the encoding pipeline.
type Source interface {
	Start() error
	Stop()
	Frames() <-chan *codec.Frame
}
