package remote

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recitation/internal/domain"
	"github.com/heartmarshall/recitation/internal/service/recording"
)

// RecordingClient manages recordings on a recitation server.
type RecordingClient struct {
	c *Client
}

type recordingDTO struct {
	ID         uuid.UUID `json:"id"`
	TextID     uuid.UUID `json:"textId"`
	Duration   float64   `json:"duration"`
	FileSize   int64     `json:"fileSize"`
	MimeType   string    `json:"mimeType"`
	RecordedAt time.Time `json:"recordedAt"`
	CreatedAt  time.Time `json:"createdAt"`
	TextTitle  string    `json:"textTitle"`
}

type handleDTO struct {
	Handle string `json:"handle"`
	URL    string `json:"url"`
}

func (d recordingDTO) toDomain() *domain.Recording {
	return &domain.Recording{
		ID:         d.ID,
		TextID:     d.TextID,
		Duration:   d.Duration,
		FileSize:   d.FileSize,
		MimeType:   d.MimeType,
		RecordedAt: d.RecordedAt,
		CreatedAt:  d.CreatedAt,
	}
}

// SaveRecording uploads a capture, replacing any recording of the text.
func (rc *RecordingClient) SaveRecording(ctx context.Context, input recording.SaveRecordingInput) (*domain.Recording, error) {
	mimeType := domain.DetectMimeType(input.Audio, input.MimeType)
	fileName := "recording." + domain.FileExtension(mimeType)

	req := rc.c.http.R().
		SetFormData(map[string]string{
			"textId":     input.TextID.String(),
			"duration":   strconv.FormatFloat(input.Duration, 'f', -1, 64),
			"recordedAt": input.RecordedAt.UTC().Format(time.RFC3339Nano),
			"mimeType":   mimeType,
		}).
		SetMultipartField("audioFile", fileName, mimeType, bytes.NewReader(input.Audio))

	dto, err := call[recordingDTO](ctx, rc.c, http.MethodPost, "/api/recordings", req)
	if err != nil {
		return nil, fmt.Errorf("save recording: %w", err)
	}
	rec := dto.toDomain()
	rec.Audio = input.Audio
	return rec, nil
}

// GetRecording returns a recording with its audio.
func (rc *RecordingClient) GetRecording(ctx context.Context, id uuid.UUID) (*domain.Recording, error) {
	dto, err := call[recordingDTO](ctx, rc.c, http.MethodGet, "/api/recordings/"+id.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("get recording: %w", err)
	}
	rec := dto.toDomain()
	if rec.Audio, err = rc.audio(ctx, id); err != nil {
		return nil, fmt.Errorf("get recording: %w", err)
	}
	return rec, nil
}

// GetRecordingByTextID returns the recording of a text with its audio, or
// ErrNotFound when the text has none.
func (rc *RecordingClient) GetRecordingByTextID(ctx context.Context, textID uuid.UUID) (*domain.Recording, error) {
	dto, err := call[*recordingDTO](ctx, rc.c, http.MethodGet, "/api/recordings/by-text/"+textID.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("get recording by text: %w", err)
	}
	if dto == nil {
		return nil, fmt.Errorf("get recording by text: recording of text %s: %w", textID, domain.ErrNotFound)
	}
	rec := dto.toDomain()
	if rec.Audio, err = rc.audio(ctx, rec.ID); err != nil {
		return nil, fmt.Errorf("get recording by text: %w", err)
	}
	return rec, nil
}

// ListRecordings returns recording metadata, newest first. Audio is not
// fetched.
func (rc *RecordingClient) ListRecordings(ctx context.Context) ([]*domain.Recording, error) {
	dtos, err := call[[]recordingDTO](ctx, rc.c, http.MethodGet, "/api/recordings", nil)
	if err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}
	out := make([]*domain.Recording, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// CountRecordings returns the number of stored recordings.
func (rc *RecordingClient) CountRecordings(ctx context.Context) (int, error) {
	recs, err := rc.ListRecordings(ctx)
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

// DeleteRecording deletes one recording.
func (rc *RecordingClient) DeleteRecording(ctx context.Context, id uuid.UUID) error {
	if _, err := call[struct{}](ctx, rc.c, http.MethodDelete, "/api/recordings/"+id.String(), nil); err != nil {
		return fmt.Errorf("delete recording: %w", err)
	}
	return nil
}

// PlaybackURL mints a server-side handle for a recording and returns the
// absolute URL it streams from. The handle lives until RevokePlayback.
func (rc *RecordingClient) PlaybackURL(ctx context.Context, id uuid.UUID) (handle, url string, err error) {
	dto, err := call[handleDTO](ctx, rc.c, http.MethodPost, "/api/recordings/"+id.String()+"/handles", nil)
	if err != nil {
		return "", "", fmt.Errorf("mint playback handle: %w", err)
	}
	return dto.Handle, rc.c.http.BaseURL + dto.URL, nil
}

// RevokePlayback releases a handle minted by PlaybackURL.
func (rc *RecordingClient) RevokePlayback(ctx context.Context, url string) error {
	if _, err := call[struct{}](ctx, rc.c, http.MethodDelete, url, nil); err != nil {
		return fmt.Errorf("revoke playback handle: %w", err)
	}
	return nil
}

func (rc *RecordingClient) audio(ctx context.Context, id uuid.UUID) ([]byte, error) {
	resp, err := rc.c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "*/*").
		Get("/api/recordings/" + id.String() + "/audio")
	if err != nil {
		return nil, transportError(err)
	}
	if resp.IsError() {
		return nil, newAPIError(resp.StatusCode(), nil)
	}
	return resp.Body(), nil
}
