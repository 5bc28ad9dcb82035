package text

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/recitation/internal/domain"
)

// CreateText creates a user-authored text.
func (s *Service) CreateText(ctx context.Context, input CreateTextInput) (*domain.Text, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.texts.Create(ctx, &domain.Text{
		Title:    strings.TrimSpace(input.Title),
		Author:   strings.TrimSpace(input.Author),
		Content:  input.Content,
		IsCustom: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create text: %w", err)
	}

	s.cache.Invalidate()

	s.log.InfoContext(ctx, "text created",
		slog.String("text_id", created.ID.String()),
		slog.String("title", created.Title),
	)

	return created, nil
}
