// Command jpegtest exercises the JPEG encoder against synthetic frames:
// a one-shot quality sweep, a multi-frame session per supported layout,
// and a compressor-handle leak check. Encoded frames can optionally be
// written out for inspection.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/junsooki/AirCast/internal/codec"
	"github.com/junsooki/AirCast/internal/codec/jpeg"
	"github.com/junsooki/AirCast/internal/config"
	"github.com/junsooki/AirCast/internal/turbojpeg"
)

func main() {
	cfg := config.ParseSelfTestFlags()

	qualities := []int{10, 30, 50, 70, 90, 99}
	if cfg.Quality >= 0 {
		qualities = []int{cfg.Quality}
	}

	log.Printf("jpegtest: %dx%d, qualities %v", cfg.Width, cfg.Height, qualities)

	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
			log.Fatalf("out dir: %v", err)
		}
	}

	failed := false
	frame := makePackedFrame(cfg.Width, cfg.Height, codec.FormatBGRX)
	for _, q := range qualities {
		res, err := jpeg.Encode(frame, q, cfg.Speed)
		if err != nil {
			log.Printf("FAIL one-shot q=%d: %v", q, err)
			failed = true
			continue
		}
		log.Printf("one-shot q=%-2d subsampling=%s -> %d bytes", q, jpeg.ChooseSubsampling(q), res.Data.Len())
		if cfg.OutDir != "" {
			name := filepath.Join(cfg.OutDir, fmt.Sprintf("oneshot-q%02d.jpg", q))
			if err := os.WriteFile(name, res.Data.Data, 0644); err != nil {
				log.Printf("write %s: %v", name, err)
			}
		}
	}

	for _, format := range codec.InputColorspaces(codec.EncodingJPEG) {
		if err := sessionTest(cfg, format); err != nil {
			log.Printf("FAIL session %s: %v", format, err)
			failed = true
		}
	}

	if n := turbojpeg.OpenCompressors(); n != 0 {
		log.Printf("FAIL: %d compressor handles still open", n)
		failed = true
	}

	if failed {
		if text := jpeg.ErrorText(); text != "" {
			log.Printf("last compressor error: %s", text)
		}
		log.Fatal("jpegtest: FAILED")
	}
	log.Println("jpegtest: OK")
}

// sessionTest runs one encoder session over several frames of the given
// layout and verifies the frame counter and teardown.
func sessionTest(cfg *config.SelfTestConfig, format codec.PixelFormat) error {
	enc, err := jpeg.NewEncoder(jpeg.Options{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Format:  format,
		Quality: 70,
		Speed:   cfg.Speed,
	})
	if err != nil {
		return err
	}
	defer enc.Clean()

	var frame *codec.Frame
	if format.Planar() {
		frame = makePlanarFrame(cfg.Width, cfg.Height, format)
	} else {
		frame = makePackedFrame(cfg.Width, cfg.Height, format)
	}

	var total int
	for i := 0; i < cfg.Frames; i++ {
		data, _, err := enc.CompressImage(frame, -1, -1)
		if err != nil {
			return err
		}
		total += data.Len()
	}
	if enc.Frames() != cfg.Frames {
		return fmt.Errorf("frame counter %d after %d frames", enc.Frames(), cfg.Frames)
	}
	log.Printf("session %-8s %d frames -> %d bytes total", format, cfg.Frames, total)

	if cfg.OutDir != "" {
		data, _, err := enc.CompressImage(frame, -1, -1)
		if err != nil {
			return err
		}
		name := filepath.Join(cfg.OutDir, fmt.Sprintf("session-%s.jpg", format))
		if err := os.WriteFile(name, data.Data, 0644); err != nil {
			return err
		}
	}
	return nil
}

// makePackedFrame fills a packed frame with a two-axis color gradient.
func makePackedFrame(w, h int, format codec.PixelFormat) *codec.Frame {
	bpp := format.BytesPerPixel()
	stride := w * bpp
	pix := make([]byte, stride*h)
	roff, goff, boff := format.ChannelOffsets()
	for y := 0; y < h; y++ {
		row := pix[y*stride:]
		for x := 0; x < w; x++ {
			px := row[x*bpp:]
			px[roff] = byte(x * 255 / w)
			px[goff] = byte(y * 255 / h)
			px[boff] = byte((x + y) * 255 / (w + h))
		}
	}
	return &codec.Frame{
		Format:  format,
		Width:   w,
		Height:  h,
		Strides: []int{stride},
		Planes:  [][]byte{pix},
	}
}

// makePlanarFrame fills the three planes of a YUV frame with gradients
// at the plane resolutions the format dictates.
func makePlanarFrame(w, h int, format codec.PixelFormat) *codec.Frame {
	frame := &codec.Frame{
		Format:  format,
		Width:   w,
		Height:  h,
		Strides: make([]int, 3),
		Planes:  make([][]byte, 3),
	}
	for i := 0; i < 3; i++ {
		hdiv, vdiv := format.PlaneDivisors(i)
		pw := (w + hdiv - 1) / hdiv
		ph := (h + vdiv - 1) / vdiv
		frame.Strides[i] = pw
		plane := make([]byte, pw*ph)
		for y := 0; y < ph; y++ {
			for x := 0; x < pw; x++ {
				switch i {
				case 0:
					plane[y*pw+x] = byte((x + y) * 255 / (pw + ph))
				case 1:
					plane[y*pw+x] = byte(x * 255 / pw)
				default:
					plane[y*pw+x] = byte(y * 255 / ph)
				}
			}
		}
		frame.Planes[i] = plane
	}
	return frame
}
