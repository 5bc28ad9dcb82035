package text

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/recitation/internal/domain"
)

// DeleteText removes a custom text together with its recording in one
// transaction. The recording goes first so no recording outlives its text.
// Built-in texts are rejected with domain.ErrForbidden and left untouched.
func (s *Service) DeleteText(ctx context.Context, id uuid.UUID) error {
	var removed int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.texts.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get text: %w", err)
		}
		if !current.IsCustom {
			return fmt.Errorf("delete text %s: %w", id, domain.ErrForbidden)
		}

		removed, err = s.recordings.DeleteByTextID(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete recordings of text: %w", err)
		}

		if err := s.texts.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete text: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate()

	s.log.InfoContext(ctx, "text deleted",
		slog.String("text_id", id.String()),
		slog.Int64("recordings_removed", removed),
	)

	return nil
}
