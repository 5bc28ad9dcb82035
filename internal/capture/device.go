// Package capture records spoken audio from a microphone through a small
// state machine over a pluggable capture device.
package capture

import "context"

// Device is a platform capture capability.
type Device interface {
	// RequestAccess asks for the microphone. It fails with
	// domain.ErrPermissionDenied, domain.ErrDeviceUnavailable or
	// domain.ErrUnsupportedEnvironment.
	RequestAccess(ctx context.Context) error

	// Supports reports whether the device can encode mimeType.
	Supports(mimeType string) bool

	// OpenStream starts capturing. An empty mimeType selects the device
	// default. onChunk and onError may be called from any goroutine until
	// Close returns.
	OpenStream(ctx context.Context, mimeType string, onChunk func([]byte), onError func(error)) (Stream, error)
}

// Stream is an open capture. Pause and Resume must not call back into
// onChunk synchronously. Close flushes the final chunks and releases the
// device.
type Stream interface {
	MimeType() string
	Pause() error
	Resume() error
	Close() error
}

// PCMStream is a Stream that emits raw little-endian PCM frames.
// Sessions wrap its output in a WAV container.
type PCMStream interface {
	Stream
	Format() PCMFormat
}
