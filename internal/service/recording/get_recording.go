package recording

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/recitation/internal/domain"
)

// GetRecording returns one recording with its audio.
func (s *Service) GetRecording(ctx context.Context, id uuid.UUID) (*domain.Recording, error) {
	rec, err := s.recordings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recording: %w", err)
	}
	return rec, nil
}

// GetRecordingByTextID returns the current recording of a text.
// domain.ErrNotFound means the text has no recording.
func (s *Service) GetRecordingByTextID(ctx context.Context, textID uuid.UUID) (*domain.Recording, error) {
	rec, err := s.recordings.GetByTextID(ctx, textID)
	if err != nil {
		return nil, fmt.Errorf("get recording by text: %w", err)
	}
	return rec, nil
}

// ListRecordings returns all recordings, newest recorded first.
func (s *Service) ListRecordings(ctx context.Context) ([]*domain.Recording, error) {
	recs, err := s.recordings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}
	return recs, nil
}

// CountRecordings returns the number of stored recordings.
func (s *Service) CountRecordings(ctx context.Context) (int, error) {
	n, err := s.recordings.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count recordings: %w", err)
	}
	return n, nil
}
