package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/junsooki/AirCast/internal/capture"
	"github.com/junsooki/AirCast/internal/codec"
	"github.com/junsooki/AirCast/internal/codec/jpeg"
	"github.com/junsooki/AirCast/internal/config"
	"github.com/junsooki/AirCast/internal/peer"
	"github.com/junsooki/AirCast/internal/signaling"
	"github.com/junsooki/AirCast/internal/transport"
)

func main() {
	cfg := config.ParseHostFlags()

	log.Printf("AirCast Host starting")
	log.Printf("  Host ID:    %s", cfg.HostID)
	log.Printf("  Signaling:  %s", cfg.SignalingURL)
	log.Printf("  Stream:     %dx%d@%d %s", cfg.Width, cfg.Height, cfg.FPS, cfg.Format)
	log.Printf("  Quality:    %d", cfg.Quality)
	log.Printf("  Encodings:  %v", codec.Encodings())

	format, err := codec.ParsePixelFormat(cfg.Format)
	if err != nil {
		log.Fatalf("pixel format: %v", err)
	}

	src, err := capture.NewPatternSource(cfg.Width, cfg.Height, cfg.FPS, format)
	if err != nil {
		log.Fatalf("capture init: %v", err)
	}

	// Viewer-adjustable quality, applied per frame.
	var quality atomic.Int32
	quality.Store(int32(cfg.Quality))

	// Peer manager (created on first offer). Each accepted offer gets
	// its own encoder session, owned and cleaned by its stream goroutine.
	var hostPeer *peer.Host
	var stopStream chan struct{}
	var sig *signaling.Client

	sig = signaling.NewClient(cfg.SignalingURL, cfg.HostID, signaling.ClientTypeHost, codec.Encodings(), signaling.Handler{
		OnRegistered: func() {
			log.Println("Registered with signaling server")
		},
		OnOffer: func(from string, payload json.RawMessage) {
			log.Printf("Received offer from %s", from)
			if hostPeer != nil {
				hostPeer.Close()
			}
			if stopStream != nil {
				close(stopStream)
				stopStream = nil
			}

			var err error
			hostPeer, err = peer.NewHost(sig)
			if err != nil {
				log.Printf("create host peer: %v", err)
				return
			}

			enc, err := jpeg.NewEncoder(jpeg.Options{
				Width:   cfg.Width,
				Height:  cfg.Height,
				Format:  format,
				Quality: cfg.Quality,
				Speed:   cfg.Speed,
			})
			if err != nil {
				log.Printf("encoder session: %v", err)
				return
			}

			hostPeer.Transport().OnControl(func(msg transport.ControlMessage) {
				switch msg.Type {
				case transport.ControlSetQuality:
					q := msg.Quality
					if q < 0 {
						q = 0
					} else if q > 99 {
						q = 99
					}
					log.Printf("viewer requested quality %d", q)
					quality.Store(int32(q))
				}
			})

			if err := hostPeer.HandleOffer(from, payload); err != nil {
				log.Printf("handle offer: %v", err)
				enc.Clean()
				return
			}

			stopStream = make(chan struct{})
			go streamFrames(src.Frames(), stopStream, enc, hostPeer.Transport(), &quality, cfg.Speed)
		},
		OnICECandidate: func(from string, payload json.RawMessage) {
			if hostPeer != nil {
				if err := hostPeer.HandleICECandidate(payload); err != nil {
					log.Printf("handle ICE candidate: %v", err)
				}
			}
		},
		OnError: func(msg string) {
			log.Printf("signaling error: %s", msg)
		},
	})

	if err := sig.Connect(); err != nil {
		log.Fatalf("signaling connect: %v", err)
	}
	defer sig.Close()

	if err := src.Start(); err != nil {
		log.Fatalf("capture start: %v", err)
	}
	defer src.Stop()

	log.Printf("Host ready. Share this ID with viewers: %s", cfg.HostID)

	// Wait for interrupt.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	if hostPeer != nil {
		hostPeer.Close()
	}
	if stopStream != nil {
		close(stopStream)
	}
}

// streamFrames encodes captured frames and sends them until the stream
// is stopped or the capture channel closes. It owns the encoder session
// and releases it on exit.
func streamFrames(frames <-chan *codec.Frame, stop <-chan struct{}, enc *jpeg.Encoder, t *transport.DataChannelTransport, quality *atomic.Int32, speed int) {
	defer func() {
		log.Printf("stream ended after %d frames", enc.Frames())
		enc.Clean()
	}()

	var seq uint32
	for {
		select {
		case <-stop:
			return
		case frame, ok := <-frames:
			if !ok {
				return
			}
			q := int(quality.Load())
			data, _, err := enc.CompressImage(frame, q, speed)
			if err != nil {
				log.Printf("encode frame: %v", err)
				continue
			}
			pkt := transport.NewFramePacket(data, seq, frame.Width, frame.Height, q)
			seq++
			if err := t.SendFrame(pkt); err != nil {
				continue
			}
		}
	}
}
