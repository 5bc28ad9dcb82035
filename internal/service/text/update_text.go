package text

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/recitation/internal/domain"
)

// UpdateText applies a partial update to a custom text.
// Built-in texts are rejected with domain.ErrForbidden.
func (s *Service) UpdateText(ctx context.Context, input UpdateTextInput) (*domain.Text, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.TextUpdateParams{
		Title:   trimPtr(input.Title),
		Author:  trimPtr(input.Author),
		Content: input.Content,
	}

	var updated *domain.Text
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.texts.GetByID(txCtx, input.TextID)
		if err != nil {
			return fmt.Errorf("get text: %w", err)
		}
		if !current.IsCustom {
			return fmt.Errorf("update text %s: %w", input.TextID, domain.ErrForbidden)
		}

		updated, err = s.texts.Update(txCtx, input.TextID, params)
		if err != nil {
			return fmt.Errorf("update text: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate()

	s.log.InfoContext(ctx, "text updated",
		slog.String("text_id", input.TextID.String()),
	)

	return updated, nil
}
