package config

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
)

// Config holds all runtime configuration for the host binary.
type Config struct {
	SignalingURL string
	HostID       string
	Width        int
	Height       int
	FPS          int
	Quality      int
	Speed        int
	Format       string
}

// ParseHostFlags parses flags for the host binary.
func ParseHostFlags() *Config {
	cfg := &Config{}
	flag.StringVar(&cfg.SignalingURL, "signaling", "ws://localhost:8080", "Signaling server WebSocket URL")
	flag.StringVar(&cfg.HostID, "id", "", "Host ID (auto-generated if empty)")
	flag.IntVar(&cfg.Width, "width", 1280, "Stream width in pixels")
	flag.IntVar(&cfg.Height, "height", 720, "Stream height in pixels")
	flag.IntVar(&cfg.FPS, "fps", 30, "Target frames per second")
	flag.IntVar(&cfg.Quality, "quality", 70, "JPEG quality (0-99)")
	flag.IntVar(&cfg.Speed, "speed", 100, "Encoder speed hint (0-100)")
	flag.StringVar(&cfg.Format, "format", "BGRX", "Source pixel format")
	flag.Parse()

	if cfg.HostID == "" {
		cfg.HostID = fmt.Sprintf("host-%s", randomID())
	}
	return cfg
}

// SelfTestConfig holds configuration for the jpegtest binary.
type SelfTestConfig struct {
	Width   int
	Height  int
	Quality int
	Speed   int
	Frames  int
	OutDir  string
}

// ParseSelfTestFlags parses flags for the jpegtest binary.
func ParseSelfTestFlags() *SelfTestConfig {
	cfg := &SelfTestConfig{}
	flag.IntVar(&cfg.Width, "width", 640, "Test frame width in pixels")
	flag.IntVar(&cfg.Height, "height", 480, "Test frame height in pixels")
	flag.IntVar(&cfg.Quality, "quality", -1, "Single quality to test (-1 = sweep)")
	flag.IntVar(&cfg.Speed, "speed", 100, "Encoder speed hint (0-100)")
	flag.IntVar(&cfg.Frames, "frames", 10, "Frames per session test")
	flag.StringVar(&cfg.OutDir, "out", "", "Directory to write encoded frames to (optional)")
	flag.Parse()
	return cfg
}

func randomID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "0000"
	}
	return hex.EncodeToString(b)
}
