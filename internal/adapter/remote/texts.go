package remote

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recitation/internal/domain"
	"github.com/heartmarshall/recitation/internal/service/text"
)

// TextClient manages texts on a recitation server.
type TextClient struct {
	c *Client
}

type textDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Preview   string    `json:"preview"`
	IsCustom  bool      `json:"isCustom"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type textOverviewDTO struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Author       string     `json:"author"`
	Preview      string     `json:"preview"`
	IsCustom     bool       `json:"isCustom"`
	CreatedAt    time.Time  `json:"createdAt"`
	HasRecording bool       `json:"hasRecording"`
	RecordedAt   *time.Time `json:"recordedAt"`
}

type textBody struct {
	Title   *string `json:"title,omitempty"`
	Author  *string `json:"author,omitempty"`
	Content *string `json:"content,omitempty"`
}

func (d textDTO) toDomain() *domain.Text {
	t := &domain.Text{
		ID:        d.ID,
		Title:     d.Title,
		Author:    d.Author,
		Content:   d.Content,
		Preview:   d.Preview,
		IsCustom:  d.IsCustom,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	t.FillDefaults()
	return t
}

// CreateText creates a custom text.
func (tc *TextClient) CreateText(ctx context.Context, input text.CreateTextInput) (*domain.Text, error) {
	req := tc.c.http.R().SetBody(textBody{Title: &input.Title, Author: &input.Author, Content: &input.Content})
	dto, err := call[textDTO](ctx, tc.c, http.MethodPost, "/api/texts", req)
	if err != nil {
		return nil, fmt.Errorf("create text: %w", err)
	}
	return dto.toDomain(), nil
}

// GetText returns one text.
func (tc *TextClient) GetText(ctx context.Context, id uuid.UUID) (*domain.Text, error) {
	dto, err := call[textDTO](ctx, tc.c, http.MethodGet, "/api/texts/"+id.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("get text: %w", err)
	}
	return dto.toDomain(), nil
}

// ListOverview returns every text with its recording status.
func (tc *TextClient) ListOverview(ctx context.Context) ([]domain.TextWithRecording, error) {
	dtos, err := call[[]textOverviewDTO](ctx, tc.c, http.MethodGet, "/api/texts", nil)
	if err != nil {
		return nil, fmt.Errorf("list texts: %w", err)
	}

	out := make([]domain.TextWithRecording, 0, len(dtos))
	for _, d := range dtos {
		t := domain.Text{
			ID:        d.ID,
			Title:     d.Title,
			Author:    d.Author,
			Preview:   d.Preview,
			IsCustom:  d.IsCustom,
			CreatedAt: d.CreatedAt,
		}
		t.FillDefaults()
		out = append(out, domain.TextWithRecording{Text: t, HasRecording: d.HasRecording, RecordedAt: d.RecordedAt})
	}
	return out, nil
}

// ListTexts returns every text without content; the server only exposes the
// overview listing.
func (tc *TextClient) ListTexts(ctx context.Context) ([]*domain.Text, error) {
	items, err := tc.ListOverview(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Text, 0, len(items))
	for i := range items {
		t := items[i].Text
		out = append(out, &t)
	}
	return out, nil
}

// UpdateText applies a partial update to a custom text.
func (tc *TextClient) UpdateText(ctx context.Context, input text.UpdateTextInput) (*domain.Text, error) {
	req := tc.c.http.R().SetBody(textBody{Title: input.Title, Author: input.Author, Content: input.Content})
	dto, err := call[textDTO](ctx, tc.c, http.MethodPut, "/api/texts/"+input.TextID.String(), req)
	if err != nil {
		return nil, fmt.Errorf("update text: %w", err)
	}
	return dto.toDomain(), nil
}

// DeleteText deletes a custom text and its recording.
func (tc *TextClient) DeleteText(ctx context.Context, id uuid.UUID) error {
	if _, err := call[struct{}](ctx, tc.c, http.MethodDelete, "/api/texts/"+id.String(), nil); err != nil {
		return fmt.Errorf("delete text: %w", err)
	}
	return nil
}
