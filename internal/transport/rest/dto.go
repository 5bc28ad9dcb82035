package rest

import (
	"time"

	"github.com/heartmarshall/recitation/internal/domain"
)

type textRequest struct {
	Title   *string `json:"title"`
	Author  *string `json:"author"`
	Content *string `json:"content"`
}

type textResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Preview   string    `json:"preview"`
	IsCustom  bool      `json:"isCustom"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type textOverviewResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Author       string     `json:"author"`
	Preview      string     `json:"preview"`
	IsCustom     bool       `json:"isCustom"`
	CreatedAt    time.Time  `json:"createdAt"`
	HasRecording bool       `json:"hasRecording"`
	RecordedAt   *time.Time `json:"recordedAt"`
}

type recordingResponse struct {
	ID         string    `json:"id"`
	TextID     string    `json:"textId"`
	Duration   float64   `json:"duration"`
	FileSize   int64     `json:"fileSize"`
	MimeType   string    `json:"mimeType"`
	RecordedAt time.Time `json:"recordedAt"`
	CreatedAt  time.Time `json:"createdAt"`
	TextTitle  string    `json:"textTitle,omitempty"`
}

type handleResponse struct {
	Handle string `json:"handle"`
	URL    string `json:"url"`
}

func toTextResponse(t *domain.Text) textResponse {
	return textResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		Author:    t.Author,
		Content:   t.Content,
		Preview:   t.Preview,
		IsCustom:  t.IsCustom,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTextOverviewResponse(t domain.TextWithRecording) textOverviewResponse {
	return textOverviewResponse{
		ID:           t.ID.String(),
		Title:        t.Title,
		Author:       t.Author,
		Preview:      t.Preview,
		IsCustom:     t.IsCustom,
		CreatedAt:    t.CreatedAt,
		HasRecording: t.HasRecording,
		RecordedAt:   t.RecordedAt,
	}
}

func toRecordingResponse(rec *domain.Recording) recordingResponse {
	return recordingResponse{
		ID:         rec.ID.String(),
		TextID:     rec.TextID.String(),
		Duration:   rec.Duration,
		FileSize:   rec.FileSize,
		MimeType:   rec.MimeType,
		RecordedAt: rec.RecordedAt,
		CreatedAt:  rec.CreatedAt,
	}
}
