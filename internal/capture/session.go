package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/recitation/internal/domain"
)

// DefaultTickInterval is how often the live duration is published.
const DefaultTickInterval = 100 * time.Millisecond

// State is the lifecycle position of a Session.
type State int

const (
	Idle State = iota
	Capturing
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Capturing:
		return "capturing"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result is the output of a stopped session.
type Result struct {
	Audio    domain.Audio
	Duration time.Duration
}

// Seconds returns the duration in seconds, as stored on a Recording.
func (r Result) Seconds() float64 {
	return r.Duration.Seconds()
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithTickInterval sets how often the observer is called.
func WithTickInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.tick = d
		}
	}
}

// WithObserver receives the live duration on every tick.
func WithObserver(fn func(time.Duration)) Option {
	return func(s *Session) { s.observer = fn }
}

// WithPreferredMimeTypes overrides PreferredMimeTypes.
func WithPreferredMimeTypes(types []string) Option {
	return func(s *Session) {
		if len(types) > 0 {
			s.preferred = types
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// Session is one attempt to record audio. It moves
// Idle -> Capturing -> (Paused <-> Capturing) -> Stopped and is not
// reusable once Stopped. All methods are safe for concurrent use.
type Session struct {
	device    Device
	preferred []string
	now       func() time.Time
	tick      time.Duration
	observer  func(time.Duration)
	log       *slog.Logger

	mu       sync.Mutex
	state    State
	starting bool
	flushing bool
	stream   Stream
	mimeType string
	chunks   [][]byte
	err      error

	elapsed      time.Duration // frozen baseline of finished segments
	segmentStart time.Time

	stopTick chan struct{}
	released chan struct{}
}

// NewSession creates an Idle session over device.
func NewSession(device Device, opts ...Option) *Session {
	s := &Session{
		device:    device,
		preferred: PreferredMimeTypes,
		now:       time.Now,
		tick:      DefaultTickInterval,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "capture")
	return s
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the device error that stopped the session, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// MimeType returns the negotiated encoding once capturing.
func (s *Session) MimeType() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mimeType
}

// Duration returns the captured time so far, excluding paused spans.
func (s *Session) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.durationLocked()
}

func (s *Session) durationLocked() time.Duration {
	if s.state == Capturing {
		return s.elapsed + s.now().Sub(s.segmentStart)
	}
	return s.elapsed
}

// Start acquires the device and begins capturing. Access errors leave the
// session Idle so the caller may retry.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != Idle || s.starting {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("start capture in state %s: %w", state, domain.ErrInvalidState)
	}
	s.starting = true
	s.mu.Unlock()

	stream, mimeType, err := s.open(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.starting = false

	if err != nil {
		s.chunks = nil
		return err
	}
	if s.state != Idle {
		// Abandoned while the device was opening.
		go stream.Close()
		return fmt.Errorf("start capture: %w", domain.ErrInvalidState)
	}

	s.stream = stream
	s.mimeType = mimeType
	s.state = Capturing
	s.segmentStart = s.now()
	s.stopTick = make(chan struct{})
	go s.runTicker(s.stopTick)

	s.log.DebugContext(ctx, "capture started", slog.String("mime_type", mimeType))
	return nil
}

func (s *Session) open(ctx context.Context) (Stream, string, error) {
	if err := s.device.RequestAccess(ctx); err != nil {
		return nil, "", fmt.Errorf("request capture access: %w", deviceError(err))
	}

	requested := Negotiate(s.device, s.preferred)
	stream, err := s.device.OpenStream(ctx, requested, s.onChunk, s.onError)
	if err != nil {
		return nil, "", fmt.Errorf("open capture stream: %w", deviceError(err))
	}

	mimeType := stream.MimeType()
	if mimeType == "" {
		mimeType = requested
	}
	return stream, mimeType, nil
}

// Pause freezes the duration and drops incoming audio. It is a no-op
// unless capturing.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Capturing {
		return nil
	}
	// State changes only once the device accepts.
	if err := s.stream.Pause(); err != nil {
		return fmt.Errorf("pause capture: %w", err)
	}
	s.elapsed += s.now().Sub(s.segmentStart)
	s.state = Paused
	return nil
}

// Resume continues counting from the frozen baseline. It is a no-op
// unless paused.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Paused {
		return nil
	}
	if err := s.stream.Resume(); err != nil {
		return fmt.Errorf("resume capture: %w", err)
	}
	s.segmentStart = s.now()
	s.state = Capturing
	return nil
}

// Stop finishes the capture, releases the device and returns the audio.
// If a device error ended the session, Stop returns that error and no audio.
func (s *Session) Stop() (Result, error) {
	s.mu.Lock()
	switch s.state {
	case Capturing, Paused:
	case Stopped:
		err, released := s.err, s.released
		s.mu.Unlock()
		if err == nil {
			return Result{}, fmt.Errorf("stop capture: %w", domain.ErrInvalidState)
		}
		if released != nil {
			<-released
		}
		return Result{}, err
	default:
		state := s.state
		s.mu.Unlock()
		return Result{}, fmt.Errorf("stop capture in state %s: %w", state, domain.ErrInvalidState)
	}

	s.elapsed = s.durationLocked()
	s.state = Stopped
	s.flushing = true
	close(s.stopTick)
	stream := s.stream
	s.mu.Unlock()

	closeErr := stream.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushing = false

	if s.err == nil && closeErr != nil {
		s.err = fmt.Errorf("close capture stream: %w", deviceError(closeErr))
	}
	if s.err != nil {
		s.chunks = nil
		return Result{}, s.err
	}

	data := bytes.Join(s.chunks, nil)
	s.chunks = nil
	mimeType := s.mimeType
	if mimeType == "" {
		mimeType = domain.DefaultMimeType
	}
	duration := s.elapsed

	if pcm, ok := stream.(PCMStream); ok {
		f := pcm.Format()
		data = WrapPCM(data, f)
		mimeType = "audio/wav"
		duration = f.Duration(len(data) - wavHeaderSize)
	} else if d, ok := WAVDuration(data); ok {
		duration = d
	}

	s.log.Debug("capture stopped",
		slog.Int("bytes", len(data)),
		slog.Duration("duration", duration),
	)

	return Result{
		Audio:    domain.Audio{Data: data, MimeType: mimeType},
		Duration: duration,
	}, nil
}

// Abandon ends the session without producing audio and releases the device.
// Calling it on a stopped session does nothing.
func (s *Session) Abandon() error {
	s.mu.Lock()
	switch s.state {
	case Idle:
		s.state = Stopped
		s.mu.Unlock()
		return nil
	case Stopped:
		released := s.released
		s.mu.Unlock()
		if released != nil {
			<-released
		}
		return nil
	}

	s.state = Stopped
	s.chunks = nil
	close(s.stopTick)
	stream := s.stream
	s.mu.Unlock()

	if err := stream.Close(); err != nil {
		return fmt.Errorf("release capture device: %w", err)
	}
	s.log.Debug("capture abandoned")
	return nil
}

func (s *Session) onChunk(b []byte) {
	if len(b) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Capturing || s.flushing || s.starting {
		s.chunks = append(s.chunks, bytes.Clone(b))
	}
}

func (s *Session) onError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.flushing {
		if s.err == nil {
			s.err = fmt.Errorf("capture: %w", deviceError(err))
		}
		return
	}
	if s.state != Capturing && s.state != Paused {
		return
	}

	s.elapsed = s.durationLocked()
	s.state = Stopped
	s.err = fmt.Errorf("capture: %w", deviceError(err))
	s.chunks = nil
	close(s.stopTick)

	// Close may wait for the goroutine that reported the error.
	stream := s.stream
	released := make(chan struct{})
	s.released = released
	go func() {
		defer close(released)
		_ = stream.Close()
	}()

	s.log.Warn("capture failed", slog.String("error", err.Error()))
}

func (s *Session) runTicker(stop <-chan struct{}) {
	if s.observer == nil {
		return
	}
	t := time.NewTicker(s.tick)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			s.observer(s.Duration())
		}
	}
}

// deviceError keeps classified device errors and files the rest under
// domain.ErrDeviceUnavailable.
func deviceError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if domain.Kind(err) != domain.KindInternal {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrDeviceUnavailable, err)
}
