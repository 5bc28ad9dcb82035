// Package cli holds the cobra commands of the recitation binary.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/recitation/internal/app"
	"github.com/heartmarshall/recitation/internal/config"
	"github.com/heartmarshall/recitation/internal/tui"
)

// Env holds injectable dependencies for CLI commands.
// Use DefaultEnv or NewEnv to create a valid instance.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time

	ConfigLoader ConfigLoader
	// Logger overrides the logger built from the loaded config.
	Logger *slog.Logger

	OpenBackend func(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app.Backend, error)
	Serve       func(ctx context.Context, cfg *config.Config, log *slog.Logger) error
	Record      func(ctx context.Context, opts tui.Options) (tui.Outcome, error)
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	Load() (*config.Config, error)
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStdout sets the stdout writer.
func WithStdout(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stdout = w
	}
}

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stderr = w
	}
}

// WithConfigLoader sets the config loader.
func WithConfigLoader(l ConfigLoader) EnvOption {
	return func(e *Env) {
		e.ConfigLoader = l
	}
}

// WithLogger sets the logger used instead of the configured one.
func WithLogger(l *slog.Logger) EnvOption {
	return func(e *Env) {
		e.Logger = l
	}
}

// WithRecord replaces the interactive recorder.
func WithRecord(fn func(ctx context.Context, opts tui.Options) (tui.Outcome, error)) EnvOption {
	return func(e *Env) {
		e.Record = fn
	}
}

// WithServe replaces the HTTP server entry point.
func WithServe(fn func(ctx context.Context, cfg *config.Config, log *slog.Logger) error) EnvOption {
	return func(e *Env) {
		e.Serve = fn
	}
}

// DefaultEnv returns an Env with production defaults.
func DefaultEnv() *Env {
	return &Env{
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Now:          time.Now,
		ConfigLoader: defaultConfigLoader{},
		OpenBackend:  app.OpenBackend,
		Serve:        app.Run,
		Record: func(ctx context.Context, opts tui.Options) (tui.Outcome, error) {
			return tui.Run(ctx, opts)
		},
	}
}

// NewEnv creates an Env with the given options applied to defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// setup loads the config and builds the logger. Interactive commands own
// the terminal, so without a log file they log nowhere.
func (e *Env) setup(interactive bool) (*config.Config, *slog.Logger, error) {
	cfg, err := e.ConfigLoader.Load()
	if err != nil {
		return nil, nil, err
	}
	if e.Logger != nil {
		return cfg, e.Logger, nil
	}
	if interactive && strings.TrimSpace(cfg.Log.File) == "" {
		return cfg, slog.New(slog.DiscardHandler), nil
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

// withBackend opens the configured store, runs fn and closes the store.
func (e *Env) withBackend(ctx context.Context, interactive bool, fn func(cfg *config.Config, b *app.Backend, log *slog.Logger) error) error {
	cfg, log, err := e.setup(interactive)
	if err != nil {
		return err
	}

	b, err := e.OpenBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := b.Close(); err != nil {
			log.Error("close store", slog.String("error", err.Error()))
		}
	}()

	return fn(cfg, b, log)
}

// ---------------------------------------------------------------------------
// Default implementations
// ---------------------------------------------------------------------------

type defaultConfigLoader struct{}

func (defaultConfigLoader) Load() (*config.Config, error) {
	return config.Load()
}

var _ ConfigLoader = defaultConfigLoader{}
