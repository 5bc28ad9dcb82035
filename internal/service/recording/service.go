package recording

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recitation/internal/domain"
)

type recordingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recording, error)
	GetByTextID(ctx context.Context, textID uuid.UUID) (*domain.Recording, error)
	List(ctx context.Context) ([]*domain.Recording, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, rec *domain.Recording) (*domain.Recording, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type textRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Text, error)
}

type listCache interface {
	Invalidate()
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Limits bounds accepted recordings.
type Limits struct {
	MaxDuration time.Duration
	MaxBytes    int64
}

// DefaultLimits mirrors the domain maxima.
var DefaultLimits = Limits{
	MaxDuration: domain.MaxRecordingSeconds * time.Second,
	MaxBytes:    domain.MaxRecordingBytes,
}

// Service provides recording operations.
type Service struct {
	recordings recordingRepo
	texts      textRepo
	cache      listCache
	tx         txManager
	limits     Limits
	log        *slog.Logger
}

// NewService creates a new Recording service.
func NewService(
	log *slog.Logger,
	recordings recordingRepo,
	texts textRepo,
	cache listCache,
	tx txManager,
	limits Limits,
) *Service {
	if limits.MaxDuration <= 0 {
		limits.MaxDuration = DefaultLimits.MaxDuration
	}
	if limits.MaxBytes <= 0 {
		limits.MaxBytes = DefaultLimits.MaxBytes
	}
	return &Service{
		recordings: recordings,
		texts:      texts,
		cache:      cache,
		tx:         tx,
		limits:     limits,
		log:        log.With("service", "recording"),
	}
}
