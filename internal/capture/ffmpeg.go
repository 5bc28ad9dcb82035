package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/recitation/internal/domain"
)

// Compile-time interface implementation checks.
var (
	_ Device    = (*FFmpegDevice)(nil)
	_ PCMStream = (*ffmpegStream)(nil)
)

const (
	defaultSampleRate  = 16000
	defaultStopTimeout = 3 * time.Second
	probeSeconds       = "0.1"
	chunkInterval      = 100 * time.Millisecond
)

// ffmpegRunner runs FFmpeg.
type ffmpegRunner interface {
	// RunOutput runs to completion and returns stderr.
	RunOutput(ctx context.Context, path string, args []string) (string, error)
	// Start launches a long-running capture writing PCM to its stdout.
	Start(path string, args []string) (process, error)
}

// process is a running FFmpeg capture.
type process interface {
	Stdout() io.Reader
	// Stop asks FFmpeg to quit, kills it after timeout and waits for exit.
	Stop(timeout time.Duration) error
	// Wait blocks until the process exits.
	Wait() error
	Stderr() string
}

// FFmpegOption configures an FFmpegDevice.
type FFmpegOption func(*FFmpegDevice)

// WithFFmpegRunner sets the FFmpeg runner.
func WithFFmpegRunner(r ffmpegRunner) FFmpegOption {
	return func(d *FFmpegDevice) { d.runner = r }
}

// WithSampleRate sets the capture sample rate in Hz.
func WithSampleRate(hz int) FFmpegOption {
	return func(d *FFmpegDevice) {
		if hz > 0 {
			d.format.SampleRate = hz
		}
	}
}

// WithStopTimeout bounds how long Close waits for FFmpeg to exit.
func WithStopTimeout(timeout time.Duration) FFmpegOption {
	return func(d *FFmpegDevice) {
		if timeout > 0 {
			d.stopTimeout = timeout
		}
	}
}

// FFmpegDevice captures the microphone through an FFmpeg subprocess that
// streams mono 16-bit PCM. It supports macOS (avfoundation), Linux (alsa)
// and Windows (dshow).
type FFmpegDevice struct {
	ffmpegPath  string
	device      string
	inputFormat string
	format      PCMFormat
	stopTimeout time.Duration
	runner      ffmpegRunner
	lookPath    func(string) (string, error)
}

// NewFFmpegDevice creates a device. An empty ffmpegPath searches PATH; an
// empty device selects the platform default input.
func NewFFmpegDevice(ffmpegPath, device string, opts ...FFmpegOption) *FFmpegDevice {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	d := &FFmpegDevice{
		ffmpegPath:  ffmpegPath,
		device:      device,
		inputFormat: inputFormat(runtime.GOOS),
		format:      PCMFormat{SampleRate: defaultSampleRate, Channels: 1, BitsPerSample: 16},
		stopTimeout: defaultStopTimeout,
		runner:      execRunner{},
		lookPath:    exec.LookPath,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RequestAccess checks that FFmpeg exists and that a short probe capture
// from the input succeeds.
func (d *FFmpegDevice) RequestAccess(ctx context.Context) error {
	path, err := d.lookPath(d.ffmpegPath)
	if err != nil {
		return fmt.Errorf("%w: ffmpeg not found: %w", domain.ErrUnsupportedEnvironment, err)
	}

	args := append(d.inputArgs(), "-t", probeSeconds, "-f", "null", "-")
	stderr, err := d.runner.RunOutput(ctx, path, args)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return classifyFFmpegError(stderr, err)
	}
	return nil
}

// Supports reports true for WAV only; FFmpeg emits raw PCM.
func (d *FFmpegDevice) Supports(mimeType string) bool {
	return domain.BaseMimeType(mimeType) == "audio/wav"
}

// OpenStream starts FFmpeg and delivers PCM in chunks of about 100ms.
func (d *FFmpegDevice) OpenStream(ctx context.Context, mimeType string, onChunk func([]byte), onError func(error)) (Stream, error) {
	if mimeType != "" && !d.Supports(mimeType) {
		return nil, fmt.Errorf("%w: ffmpeg cannot encode %s", domain.ErrUnsupportedEnvironment, mimeType)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	proc, err := d.runner.Start(d.ffmpegPath, d.captureArgs())
	if err != nil {
		return nil, classifyFFmpegError("", err)
	}

	s := &ffmpegStream{
		proc:        proc,
		format:      d.format,
		stopTimeout: d.stopTimeout,
		onChunk:     onChunk,
		onError:     onError,
		done:        make(chan struct{}),
	}
	go s.read()
	return s, nil
}

func (d *FFmpegDevice) inputArgs() []string {
	return []string{"-hide_banner", "-nostats", "-f", d.inputFormat, "-i", formatInputArg(d.inputFormat, d.device)}
}

func (d *FFmpegDevice) captureArgs() []string {
	args := d.inputArgs()
	return append(args,
		"-ac", strconv.Itoa(d.format.Channels),
		"-ar", strconv.Itoa(d.format.SampleRate),
		"-f", "s16le",
		"pipe:1",
	)
}

// inputFormat returns the FFmpeg input format for goos.
func inputFormat(goos string) string {
	switch goos {
	case "darwin":
		return "avfoundation"
	case "windows":
		return "dshow"
	default:
		return "alsa"
	}
}

// formatInputArg returns the -i argument for a device on format.
func formatInputArg(format, device string) string {
	switch format {
	case "avfoundation":
		if device == "" {
			device = ":0"
		}
		if !strings.HasPrefix(device, ":") {
			device = ":" + device
		}
		return device
	case "dshow":
		if device == "" {
			device = "default"
		}
		return "audio=" + device
	default:
		if device == "" {
			return "default"
		}
		return device
	}
}

// classifyFFmpegError maps FFmpeg output to a capture error kind.
func classifyFFmpegError(stderr string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %w", domain.ErrUnsupportedEnvironment, err)
	}

	lower := strings.ToLower(stderr)
	detail := lastLine(stderr)
	switch {
	case strings.Contains(lower, "permission denied"),
		strings.Contains(lower, "not authorized"),
		strings.Contains(lower, "not permitted"):
		return fmt.Errorf("%w: %s", domain.ErrPermissionDenied, detail)
	case strings.Contains(lower, "unknown input format"):
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedEnvironment, detail)
	case strings.Contains(lower, "no such file or directory"),
		strings.Contains(lower, "no such device"),
		strings.Contains(lower, "could not find audio"),
		strings.Contains(lower, "i/o error"),
		strings.Contains(lower, "input/output error"),
		strings.Contains(lower, "device or resource busy"):
		return fmt.Errorf("%w: %s", domain.ErrDeviceUnavailable, detail)
	}
	if detail != "" {
		return fmt.Errorf("%w: %s: %w", domain.ErrDeviceUnavailable, detail, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrDeviceUnavailable, err)
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}

// ---------------------------------------------------------------------------
// stream
// ---------------------------------------------------------------------------

type ffmpegStream struct {
	proc        process
	format      PCMFormat
	stopTimeout time.Duration
	onChunk     func([]byte)
	onError     func(error)

	paused  atomic.Bool
	closing atomic.Bool
	once    sync.Once
	stopErr error
	done    chan struct{}
}

func (s *ffmpegStream) MimeType() string  { return "audio/wav" }
func (s *ffmpegStream) Format() PCMFormat { return s.format }

// Pause drops captured frames until Resume; FFmpeg keeps running.
func (s *ffmpegStream) Pause() error {
	s.paused.Store(true)
	return nil
}

func (s *ffmpegStream) Resume() error {
	s.paused.Store(false)
	return nil
}

// Close stops FFmpeg and returns once every captured frame was delivered.
func (s *ffmpegStream) Close() error {
	s.once.Do(func() {
		s.closing.Store(true)
		s.stopErr = s.proc.Stop(s.stopTimeout)
		<-s.done
	})
	return s.stopErr
}

func (s *ffmpegStream) read() {
	defer close(s.done)

	// Whole frames only, so paused spans never split a sample.
	frame := s.format.Channels * s.format.BitsPerSample / 8
	size := s.format.ByteRate() * int(chunkInterval/time.Millisecond) / 1000
	size -= size % frame
	buf := make([]byte, size)

	for {
		n, err := io.ReadFull(s.proc.Stdout(), buf)
		if n > 0 && !s.paused.Load() {
			s.onChunk(buf[:n-n%frame])
		}
		if err != nil {
			if s.closing.Load() {
				return
			}
			waitErr := s.proc.Wait()
			if s.closing.Load() {
				return
			}
			if waitErr == nil {
				waitErr = io.ErrUnexpectedEOF
			}
			s.onError(classifyFFmpegError(s.proc.Stderr(), waitErr))
			return
		}
	}
}

// ---------------------------------------------------------------------------
// exec-backed runner
// ---------------------------------------------------------------------------

type execRunner struct{}

func (execRunner) RunOutput(ctx context.Context, path string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

func (execRunner) Start(path string, args []string) (process, error) {
	cmd := exec.Command(path, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("create stdin pipe: %w", err)
	}
	pr, pw := io.Pipe()
	cmd.Stdout = pw
	p := &execProcess{cmd: cmd, stdin: stdin, stdout: pr, done: make(chan struct{})}
	cmd.Stderr = &p.stderr

	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}
	go func() {
		p.err = cmd.Wait()
		_ = pw.Close()
		close(p.done)
	}()
	return p, nil
}

type execProcess struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.Reader
	stderr lockedBuffer
	err    error
	done   chan struct{}
}

func (p *execProcess) Stdout() io.Reader { return p.stdout }
func (p *execProcess) Stderr() string    { return p.stderr.String() }

func (p *execProcess) Wait() error {
	<-p.done
	return p.err
}

func (p *execProcess) Stop(timeout time.Duration) error {
	_, _ = io.WriteString(p.stdin, "q")
	_ = p.stdin.Close()

	select {
	case <-p.done:
		return nil
	case <-time.After(timeout):
		_ = p.cmd.Process.Kill()
		<-p.done
		return fmt.Errorf("ffmpeg killed after %v", timeout)
	}
}

// lockedBuffer is written by the exec copier while Stderr reads it.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
