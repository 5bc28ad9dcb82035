package text

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/recitation/internal/domain"
)

// GetText returns one text.
func (s *Service) GetText(ctx context.Context, id uuid.UUID) (*domain.Text, error) {
	t, err := s.texts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get text: %w", err)
	}
	return t, nil
}

// ListTexts returns all texts oldest first.
func (s *Service) ListTexts(ctx context.Context) ([]*domain.Text, error) {
	texts, err := s.texts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list texts: %w", err)
	}
	return texts, nil
}

// ListOverview returns all texts with their recording status, served from
// the list cache while it is fresh.
func (s *Service) ListOverview(ctx context.Context) ([]domain.TextWithRecording, error) {
	items, err := s.cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("list overview: %w", err)
	}
	return items, nil
}

// CountTexts returns the number of stored texts.
func (s *Service) CountTexts(ctx context.Context) (int, error) {
	n, err := s.texts.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count texts: %w", err)
	}
	return n, nil
}
