package recording

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/recitation/internal/domain"
)

// SaveRecording stores a capture as the single current recording of its
// text. An existing recording is deleted and the new one inserted in one
// transaction; every save yields a fresh id.
//
// When a replaced recording was already deleted and the transaction could
// not be rolled back, the error wraps domain.ErrDataLoss.
func (s *Service) SaveRecording(ctx context.Context, input SaveRecordingInput) (*domain.Recording, error) {
	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	mimeType := domain.DetectMimeType(input.Audio, input.MimeType)
	if !domain.IsAllowedMimeType(mimeType) {
		return nil, domain.NewValidationError("mime_type", "unsupported audio type")
	}

	var (
		saved    *domain.Recording
		replaced *domain.Recording
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.texts.GetByID(txCtx, input.TextID); err != nil {
			return fmt.Errorf("get text: %w", err)
		}

		existing, err := s.recordings.GetByTextID(txCtx, input.TextID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return fmt.Errorf("get recording by text: %w", err)
		default:
			if err := s.recordings.Delete(txCtx, existing.ID); err != nil {
				return fmt.Errorf("delete previous recording: %w", err)
			}
			replaced = existing
		}

		saved, err = s.recordings.Create(txCtx, &domain.Recording{
			TextID:     input.TextID,
			Audio:      input.Audio,
			Duration:   input.Duration,
			FileSize:   int64(len(input.Audio)),
			MimeType:   mimeType,
			RecordedAt: input.RecordedAt,
		})
		if err != nil {
			return fmt.Errorf("create recording: %w", err)
		}
		return nil
	})
	if err != nil {
		if replaced != nil && errors.Is(err, domain.ErrRollbackFailed) {
			s.log.ErrorContext(ctx, "previous recording lost",
				slog.String("text_id", input.TextID.String()),
				slog.String("recording_id", replaced.ID.String()),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("save recording: %w: %w", domain.ErrDataLoss, err)
		}
		return nil, err
	}

	s.cache.Invalidate()

	attrs := []any{
		slog.String("text_id", saved.TextID.String()),
		slog.String("recording_id", saved.ID.String()),
		slog.Int64("file_size", saved.FileSize),
		slog.String("mime_type", saved.MimeType),
	}
	if replaced != nil {
		attrs = append(attrs, slog.String("replaced_id", replaced.ID.String()))
	}
	s.log.InfoContext(ctx, "recording saved", attrs...)

	return saved, nil
}
