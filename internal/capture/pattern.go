package capture

import (
	"fmt"
	"time"

	"github.com/junsooki/AirCast/internal/codec"
)

// PatternSource generates a moving color-bar test pattern in any packed
// layout. It is the built-in portable source; platform screen grabbers
// plug in behind the same Source interface.
type PatternSource struct {
	width  int
	height int
	fps    int
	format codec.PixelFormat

	frames  chan *codec.Frame
	done    chan struct{}
	started bool
}

// Color bars loosely following the SMPTE order.
var barColors = [8][3]byte{
	{0xC0, 0xC0, 0xC0}, // white
	{0xC0, 0xC0, 0x00}, // yellow
	{0x00, 0xC0, 0xC0}, // cyan
	{0x00, 0xC0, 0x00}, // green
	{0xC0, 0x00, 0xC0}, // magenta
	{0xC0, 0x00, 0x00}, // red
	{0x00, 0x00, 0xC0}, // blue
	{0x13, 0x13, 0x13}, // near-black
}

// NewPatternSource creates a pattern source emitting width x height
// frames in the given packed format at the given rate.
func NewPatternSource(width, height, fps int, format codec.PixelFormat) (*PatternSource, error) {
	if format.Planar() {
		return nil, fmt.Errorf("capture: pattern source needs a packed format, got %s", format)
	}
	if width <= 0 || height <= 0 || fps <= 0 {
		return nil, fmt.Errorf("capture: invalid geometry %dx%d@%d", width, height, fps)
	}
	return &PatternSource{
		width:  width,
		height: height,
		fps:    fps,
		format: format,
		frames: make(chan *codec.Frame, 2),
		done:   make(chan struct{}),
	}, nil
}

// Frames returns the channel frames are delivered on.
func (s *PatternSource) Frames() <-chan *codec.Frame { return s.frames }

// Start begins producing frames until Stop is called.
func (s *PatternSource) Start() error {
	if s.started {
		return fmt.Errorf("capture: pattern source already started")
	}
	s.started = true
	go s.loop()
	return nil
}

// Stop ends frame production and closes the frame channel.
func (s *PatternSource) Stop() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

func (s *PatternSource) loop() {
	ticker := time.NewTicker(time.Second / time.Duration(s.fps))
	defer ticker.Stop()
	defer close(s.frames)

	n := 0
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			frame := s.render(n)
			n++
			// Drop the frame if the encoder is behind.
			select {
			case s.frames <- frame:
			default:
			}
		}
	}
}

// render draws the color bars with a scanline sweeping down the frame,
// so consecutive frames differ and the encoder sees motion.
func (s *PatternSource) render(n int) *codec.Frame {
	bpp := s.format.BytesPerPixel()
	stride := s.width * bpp
	pix := make([]byte, stride*s.height)
	roff, goff, boff := s.format.ChannelOffsets()

	barWidth := (s.width + len(barColors) - 1) / len(barColors)
	sweep := n % s.height
	for y := 0; y < s.height; y++ {
		row := pix[y*stride:]
		for x := 0; x < s.width; x++ {
			c := barColors[x/barWidth%len(barColors)]
			px := row[x*bpp:]
			px[roff] = c[0]
			px[goff] = c[1]
			px[boff] = c[2]
		}
		if y == sweep {
			for x := 0; x < s.width; x++ {
				px := row[x*bpp:]
				px[roff] = 0xFF
				px[goff] = 0xFF
				px[boff] = 0xFF
			}
		}
	}

	return &codec.Frame{
		Format:    s.format,
		Width:     s.width,
		Height:    s.height,
		Strides:   []int{stride},
		Planes:    [][]byte{pix},
		Timestamp: time.Now(),
	}
}
