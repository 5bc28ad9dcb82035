package tui

import (
	"time"

	"github.com/heartmarshall/recitation/internal/capture"
	"github.com/heartmarshall/recitation/internal/domain"
)

// startedMsg reports the outcome of starting the capture session.
type startedMsg struct {
	err error
}

// tickMsg refreshes the live duration.
type tickMsg time.Time

// stoppedMsg carries the audio produced by Stop.
type stoppedMsg struct {
	result capture.Result
	err    error
}

// savedMsg reports the outcome of persisting the recording.
type savedMsg struct {
	recording *domain.Recording
	err       error
}

// abandonedMsg is sent once the device has been released without saving.
type abandonedMsg struct{}
