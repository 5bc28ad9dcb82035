package text

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/recitation/internal/domain"
)

type textRepo interface {
	Create(ctx context.Context, t *domain.Text) (*domain.Text, error)
	CreateBatch(ctx context.Context, texts []*domain.Text) ([]*domain.Text, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Text, error)
	List(ctx context.Context) ([]*domain.Text, error)
	Update(ctx context.Context, id uuid.UUID, params domain.TextUpdateParams) (*domain.Text, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

type recordingRepo interface {
	DeleteByTextID(ctx context.Context, textID uuid.UUID) (int64, error)
}

type listCache interface {
	Get(ctx context.Context) ([]domain.TextWithRecording, error)
	Invalidate()
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides text management operations.
type Service struct {
	texts      textRepo
	recordings recordingRepo
	cache      listCache
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Text service.
func NewService(
	log *slog.Logger,
	texts textRepo,
	recordings recordingRepo,
	cache listCache,
	tx txManager,
) *Service {
	return &Service{
		texts:      texts,
		recordings: recordings,
		cache:      cache,
		tx:         tx,
		log:        log.With("service", "text"),
	}
}

// trimPtr trims whitespace of a set field.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
