package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recitation/internal/adapter/postgres"
	pgrecording "github.com/heartmarshall/recitation/internal/adapter/postgres/recording"
	pgtext "github.com/heartmarshall/recitation/internal/adapter/postgres/text"
	"github.com/heartmarshall/recitation/internal/adapter/remote"
	"github.com/heartmarshall/recitation/internal/adapter/sqlite"
	sqliterecording "github.com/heartmarshall/recitation/internal/adapter/sqlite/recording"
	sqlitetext "github.com/heartmarshall/recitation/internal/adapter/sqlite/text"
	"github.com/heartmarshall/recitation/internal/config"
	"github.com/heartmarshall/recitation/internal/domain"
	"github.com/heartmarshall/recitation/internal/service/recording"
	"github.com/heartmarshall/recitation/internal/service/text"
	"github.com/heartmarshall/recitation/internal/textlist"
	"github.com/heartmarshall/recitation/migrations"
)

// TextAPI is the text surface shared by the local service and the remote
// client.
type TextAPI interface {
	CreateText(ctx context.Context, input text.CreateTextInput) (*domain.Text, error)
	GetText(ctx context.Context, id uuid.UUID) (*domain.Text, error)
	ListTexts(ctx context.Context) ([]*domain.Text, error)
	ListOverview(ctx context.Context) ([]domain.TextWithRecording, error)
	UpdateText(ctx context.Context, input text.UpdateTextInput) (*domain.Text, error)
	DeleteText(ctx context.Context, id uuid.UUID) error
}

// RecordingAPI is the recording surface shared by the local service and the
// remote client.
type RecordingAPI interface {
	SaveRecording(ctx context.Context, input recording.SaveRecordingInput) (*domain.Recording, error)
	GetRecording(ctx context.Context, id uuid.UUID) (*domain.Recording, error)
	GetRecordingByTextID(ctx context.Context, textID uuid.UUID) (*domain.Recording, error)
	ListRecordings(ctx context.Context) ([]*domain.Recording, error)
	CountRecordings(ctx context.Context) (int, error)
	DeleteRecording(ctx context.Context, id uuid.UUID) error
}

var (
	_ TextAPI      = (*text.Service)(nil)
	_ TextAPI      = (*remote.TextClient)(nil)
	_ RecordingAPI = (*recording.Service)(nil)
	_ RecordingAPI = (*remote.RecordingClient)(nil)
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Backend is the store selected by configuration together with the
// operations built on it.
type Backend struct {
	Driver     string
	Texts      TextAPI
	Recordings RecordingAPI

	// TextService and RecordingService are set for local drivers only.
	TextService      *text.Service
	RecordingService *recording.Service

	pinger  pinger
	closers []func() error
}

// OpenBackend opens the store named by cfg.Store.Driver. Local stores are
// migrated before use.
func OpenBackend(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		return openSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	case config.DriverRemote:
		return openRemote(cfg, log), nil
	default:
		return nil, fmt.Errorf("open backend: unknown driver %q", cfg.Store.Driver)
	}
}

func openSQLite(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	provider := sqlite.NewProvider(cfg.Store)
	store, err := provider.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	texts := sqlitetext.New(store.DB())
	recordings := sqliterecording.New(store.DB())
	tx := sqlite.NewTxManager(store.DB())

	b := newLocalBackend(cfg, log, texts, recordings, tx)
	b.Driver = config.DriverSQLite
	b.pinger = store
	b.closers = append(b.closers, provider.Close)

	log.Info("local store opened", slog.String("path", store.Path()))
	return b, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	fsys, err := fs.Sub(migrations.Postgres, "postgres")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := postgres.Migrate(ctx, cfg.Database.DSN, fsys); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	texts := pgtext.New(pool)
	recordings := pgrecording.New(pool)
	tx := postgres.NewTxManager(pool)

	b := newLocalBackend(cfg, log, texts, recordings, tx)
	b.Driver = config.DriverPostgres
	b.pinger = pool
	b.closers = append(b.closers, func() error {
		pool.Close()
		return nil
	})

	log.Info("database opened",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
	)
	return b, nil
}

func openRemote(cfg *config.Config, log *slog.Logger) *Backend {
	client := remote.New(cfg.Remote, log)
	log.Info("using remote server", slog.String("base_url", cfg.Remote.BaseURL))
	return &Backend{
		Driver:     config.DriverRemote,
		Texts:      client.Texts(),
		Recordings: client.Recordings(),
		pinger:     client,
	}
}

// textStore and recordingStore are the repository sets shared by both local
// adapters.
type textStore interface {
	Create(ctx context.Context, t *domain.Text) (*domain.Text, error)
	CreateBatch(ctx context.Context, texts []*domain.Text) ([]*domain.Text, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Text, error)
	List(ctx context.Context) ([]*domain.Text, error)
	Update(ctx context.Context, id uuid.UUID, params domain.TextUpdateParams) (*domain.Text, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

type recordingStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recording, error)
	GetByTextID(ctx context.Context, textID uuid.UUID) (*domain.Recording, error)
	List(ctx context.Context) ([]*domain.Recording, error)
	TextIndex(ctx context.Context) (map[uuid.UUID]time.Time, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, rec *domain.Recording) (*domain.Recording, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTextID(ctx context.Context, textID uuid.UUID) (int64, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

func newLocalBackend(cfg *config.Config, log *slog.Logger, texts textStore, recordings recordingStore, tx txRunner) *Backend {
	cache := textlist.New(log, texts, recordings, textlist.WithTTL(cfg.Cache.TextListTTL))

	textSvc := text.NewService(log, texts, recordings, cache, tx)
	recordingSvc := recording.NewService(log, recordings, texts, cache, tx, recording.Limits{
		MaxDuration: cfg.Recording.MaxDuration,
		MaxBytes:    cfg.Recording.MaxBytes,
	})

	return &Backend{
		Texts:            textSvc,
		Recordings:       recordingSvc,
		TextService:      textSvc,
		RecordingService: recordingSvc,
	}
}

// Local reports whether the backend owns its store.
func (b *Backend) Local() bool {
	return b.TextService != nil
}

// Ping checks that the store is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	return b.pinger.Ping(ctx)
}

// Close releases the store. It is safe to call once.
func (b *Backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
