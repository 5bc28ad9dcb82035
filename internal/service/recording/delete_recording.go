package recording

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// DeleteRecording removes one recording. Its text is kept.
func (s *Service) DeleteRecording(ctx context.Context, id uuid.UUID) error {
	if err := s.recordings.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recording: %w", err)
	}

	s.cache.Invalidate()

	s.log.InfoContext(ctx, "recording deleted",
		slog.String("recording_id", id.String()),
	)
	return nil
}
