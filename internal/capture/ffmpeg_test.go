package capture

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/recitation/internal/domain"
)

type fakeRunner struct {
	stderr string
	err    error
	proc   *fakeProcess

	mu   sync.Mutex
	args [][]string
}

func (r *fakeRunner) RunOutput(ctx context.Context, path string, args []string) (string, error) {
	r.mu.Lock()
	r.args = append(r.args, args)
	r.mu.Unlock()
	return r.stderr, r.err
}

func (r *fakeRunner) Start(path string, args []string) (process, error) {
	r.mu.Lock()
	r.args = append(r.args, args)
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.proc, nil
}

// fakeProcess streams whatever the test writes to w until Stop or exit.
type fakeProcess struct {
	r      *io.PipeReader
	w      *io.PipeWriter
	stderr string
	exit   error

	once sync.Once
	done chan struct{}
}

func newFakeProcess() *fakeProcess {
	r, w := io.Pipe()
	return &fakeProcess{r: r, w: w, done: make(chan struct{})}
}

func (p *fakeProcess) Stdout() io.Reader { return p.r }
func (p *fakeProcess) Stderr() string    { return p.stderr }

func (p *fakeProcess) finish(err error) {
	p.once.Do(func() {
		p.exit = err
		_ = p.w.Close()
		close(p.done)
	})
}

func (p *fakeProcess) Stop(time.Duration) error {
	p.finish(nil)
	return nil
}

func (p *fakeProcess) Wait() error {
	<-p.done
	return p.exit
}

func newTestDevice(r *fakeRunner) *FFmpegDevice {
	d := NewFFmpegDevice("ffmpeg", "", WithFFmpegRunner(r), WithSampleRate(8000))
	d.inputFormat = "alsa"
	d.lookPath = func(string) (string, error) { return "/usr/bin/ffmpeg", nil }
	return d
}

func TestFFmpegDevice_RequestAccess(t *testing.T) {
	t.Parallel()

	r := &fakeRunner{}
	d := newTestDevice(r)
	require.NoError(t, d.RequestAccess(context.Background()))

	args := strings.Join(r.args[0], " ")
	assert.Contains(t, args, "-f alsa -i default")
	assert.Contains(t, args, "-t 0.1 -f null -")
}

func TestFFmpegDevice_RequestAccessErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stderr string
		want   error
	}{
		{"permission", "[alsa @ 0x1] cannot open audio device default (Permission denied)", domain.ErrPermissionDenied},
		{"macos consent", "[avfoundation] not authorized to capture audio", domain.ErrPermissionDenied},
		{"no device", "[alsa @ 0x1] cannot open audio device hw:9 (No such file or directory)", domain.ErrDeviceUnavailable},
		{"busy", "Device or resource busy", domain.ErrDeviceUnavailable},
		{"format missing", "Unknown input format: 'alsa'", domain.ErrUnsupportedEnvironment},
		{"unknown", "something odd", domain.ErrDeviceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := newTestDevice(&fakeRunner{stderr: tt.stderr, err: errors.New("exit status 1")})
			require.ErrorIs(t, d.RequestAccess(context.Background()), tt.want)
		})
	}
}

func TestFFmpegDevice_MissingBinary(t *testing.T) {
	t.Parallel()

	d := newTestDevice(&fakeRunner{})
	d.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	require.ErrorIs(t, d.RequestAccess(context.Background()), domain.ErrUnsupportedEnvironment)
}

func TestFFmpegDevice_Supports(t *testing.T) {
	t.Parallel()

	d := newTestDevice(&fakeRunner{})
	assert.True(t, d.Supports("audio/wav"))
	assert.False(t, d.Supports("audio/webm"))
	assert.Equal(t, "audio/wav", Negotiate(d, PreferredMimeTypes))
}

func TestFFmpegDevice_StreamThroughSession(t *testing.T) {
	t.Parallel()

	proc := newFakeProcess()
	r := &fakeRunner{proc: proc}
	d := newTestDevice(r)
	s := NewSession(d)

	require.NoError(t, s.Start(context.Background()))
	assert.Contains(t, strings.Join(r.args[len(r.args)-1], " "), "-ac 1 -ar 8000 -f s16le pipe:1")

	// 8000 Hz mono s16 is 16000 bytes per second.
	_, err := proc.w.Write(make([]byte, 16000))
	require.NoError(t, err)

	res, err := s.Stop()
	require.NoError(t, err)
	assert.Equal(t, "audio/wav", res.Audio.MimeType)
	assert.Equal(t, time.Second, res.Duration)
}

func TestFFmpegDevice_PauseDropsFrames(t *testing.T) {
	t.Parallel()

	proc := newFakeProcess()
	var (
		mu  sync.Mutex
		got int
	)
	d := newTestDevice(&fakeRunner{proc: proc})
	stream, err := d.OpenStream(context.Background(), "audio/wav", func(b []byte) {
		mu.Lock()
		got += len(b)
		mu.Unlock()
	}, func(error) {})
	require.NoError(t, err)

	require.NoError(t, stream.Pause())
	_, err = proc.w.Write(make([]byte, 3200))
	require.NoError(t, err)
	require.NoError(t, stream.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, got)
}

func TestFFmpegDevice_UnexpectedExitReportsError(t *testing.T) {
	t.Parallel()

	proc := newFakeProcess()
	proc.stderr = "[alsa] read error: Input/output error"
	d := newTestDevice(&fakeRunner{proc: proc})
	s := NewSession(d)
	require.NoError(t, s.Start(context.Background()))

	proc.finish(errors.New("exit status 1"))

	assert.Eventually(t, func() bool { return s.State() == Stopped }, time.Second, time.Millisecond)
	_, err := s.Stop()
	require.ErrorIs(t, err, domain.ErrDeviceUnavailable)
}

func TestFormatInputArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format, device, want string
	}{
		{"avfoundation", "", ":0"},
		{"avfoundation", "1", ":1"},
		{"avfoundation", ":MacBook Pro Microphone", ":MacBook Pro Microphone"},
		{"dshow", "Microphone (USB)", "audio=Microphone (USB)"},
		{"alsa", "", "default"},
		{"alsa", "hw:1", "hw:1"},
	}
	for _, tt := range tests {
		if got := formatInputArg(tt.format, tt.device); got != tt.want {
			t.Errorf("formatInputArg(%q, %q) = %q, want %q", tt.format, tt.device, got, tt.want)
		}
	}
}

func TestInputFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "avfoundation", inputFormat("darwin"))
	assert.Equal(t, "dshow", inputFormat("windows"))
	assert.Equal(t, "alsa", inputFormat("linux"))
}
