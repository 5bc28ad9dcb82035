package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/recitation/internal/config"
	"github.com/heartmarshall/recitation/internal/playback"
	"github.com/heartmarshall/recitation/internal/transport/middleware"
	"github.com/heartmarshall/recitation/internal/transport/rest"
)

// ErrRemoteServe is returned when serve is asked to front another server.
var ErrRemoteServe = errors.New("serve needs a local store, not the remote driver")

// NewHTTPHandler builds the REST API over a local backend.
func NewHTTPHandler(
	b *Backend,
	cfg *config.Config,
	handles *playback.Manager,
	limiter *middleware.RateLimiter,
	log *slog.Logger,
) (http.Handler, error) {
	if !b.Local() {
		return nil, ErrRemoteServe
	}

	return rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(b, handles, BuildVersion()),
		Texts:      rest.NewTextHandler(b.TextService, log),
		Recordings: rest.NewRecordingHandler(b.RecordingService, b.TextService, handles, cfg.Recording.MaxBytes, log),
		Handles:    rest.NewHandleHandler(handles, log),
	}, rest.RouterOptions{
		CORS:             cfg.CORS,
		Limiter:          limiter,
		UploadsPerMinute: cfg.Server.UploadsPerMinute,
	}, log), nil
}

// Serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests within cfg.Server.ShutdownTimeout and revokes every playback
// handle.
func Serve(ctx context.Context, cfg *config.Config, b *Backend, log *slog.Logger) error {
	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}
	return serveListener(ctx, ln, cfg, b, log)
}

func serveListener(ctx context.Context, ln net.Listener, cfg *config.Config, b *Backend, log *slog.Logger) error {
	handles := playback.NewManager(log)
	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler, err := NewHTTPHandler(b, cfg, handles, limiter, log)
	if err != nil {
		ln.Close()
		return err
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		log.Info("shutting down http server")
		err := srv.Shutdown(shutdownCtx)
		if n := handles.RevokeAll(); n > 0 {
			log.Info("playback handles revoked", slog.Int("count", n))
		}
		return err
	})

	return g.Wait()
}
