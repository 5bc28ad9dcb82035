package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/recitation/internal/config"
	"github.com/heartmarshall/recitation/internal/tui"
)

type stubConfigLoader struct {
	cfg *config.Config
	err error
}

func (s stubConfigLoader) Load() (*config.Config, error) {
	return s.cfg, s.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Store: config.StoreConfig{
			Driver:      config.DriverSQLite,
			Path:        filepath.Join(t.TempDir(), "recitation.db"),
			BusyTimeout: time.Second,
		},
		Cache:     config.CacheConfig{TextListTTL: time.Minute},
		Recording: config.RecordingConfig{MaxDuration: time.Hour, MaxBytes: 1 << 20},
	}
}

type testEnv struct {
	env    *Env
	cfg    *config.Config
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(t *testing.T, opts ...EnvOption) *testEnv {
	t.Helper()

	te := &testEnv{
		cfg:    testConfig(t),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	base := []EnvOption{
		WithStdout(te.stdout),
		WithStderr(te.stderr),
		WithConfigLoader(stubConfigLoader{cfg: te.cfg}),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithRecord(func(context.Context, tui.Options) (tui.Outcome, error) {
			t.Fatal("recorder should not run")
			return tui.Outcome{}, nil
		}),
	}
	te.env = NewEnv(append(base, opts...)...)
	te.env.Now = func() time.Time { return time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC) }
	return te
}

// run executes the command tree with args and resets the output buffers.
func (te *testEnv) run(args ...string) (string, error) {
	te.stdout.Reset()
	te.stderr.Reset()

	root := NewRootCmd(te.env, "test")
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return te.stdout.String(), err
}
