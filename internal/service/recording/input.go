package recording

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recitation/internal/domain"
)

// SaveRecordingInput holds a finished capture to store against a text.
// An empty MimeType is detected from Audio.
type SaveRecordingInput struct {
	TextID     uuid.UUID
	Audio      []byte
	MimeType   string
	Duration   float64 // seconds
	RecordedAt time.Time
}

// Validate checks all fields against limits and collects all errors.
func (i SaveRecordingInput) Validate(limits Limits) error {
	var errs []domain.FieldError

	if i.TextID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "text_id", Message: "required"})
	}

	switch {
	case len(i.Audio) == 0:
		errs = append(errs, domain.FieldError{Field: "audio", Message: "required"})
	case int64(len(i.Audio)) > limits.MaxBytes:
		errs = append(errs, domain.FieldError{Field: "audio", Message: fmt.Sprintf("max %d bytes", limits.MaxBytes)})
	}

	if math.IsNaN(i.Duration) || i.Duration < 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must not be negative"})
	} else if i.Duration > limits.MaxDuration.Seconds() {
		errs = append(errs, domain.FieldError{Field: "duration", Message: fmt.Sprintf("max %g seconds", limits.MaxDuration.Seconds())})
	}

	if i.RecordedAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "recorded_at", Message: "required"})
	}

	if i.MimeType != "" && !domain.IsAllowedMimeType(i.MimeType) {
		errs = append(errs, domain.FieldError{Field: "mime_type", Message: "unsupported audio type"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
