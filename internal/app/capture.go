package app

import (
	"log/slog"
	"time"

	"github.com/heartmarshall/recitation/internal/capture"
	"github.com/heartmarshall/recitation/internal/config"
)

// NewCaptureSession creates a capture session on the configured microphone.
func NewCaptureSession(cfg config.CaptureConfig, log *slog.Logger, observe func(time.Duration)) *capture.Session {
	device := capture.NewFFmpegDevice(cfg.FFmpegPath, cfg.Device,
		capture.WithSampleRate(cfg.SampleRate),
		capture.WithStopTimeout(cfg.StopTimeout),
	)

	opts := []capture.Option{
		capture.WithLogger(log),
		capture.WithTickInterval(cfg.TickInterval),
		capture.WithPreferredMimeTypes(cfg.MimeTypes),
	}
	if observe != nil {
		opts = append(opts, capture.WithObserver(observe))
	}
	return capture.NewSession(device, opts...)
}
