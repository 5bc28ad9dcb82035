package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/recitation/internal/config"
)

// Run is the server entry point. It opens the configured store, serves the
// REST API until ctx is cancelled, and closes the store.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("driver", cfg.Store.Driver),
	)

	b, err := OpenBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := b.Close(); err != nil {
			logger.Error("close store", slog.String("error", err.Error()))
		}
	}()

	return Serve(ctx, cfg, b, logger)
}
