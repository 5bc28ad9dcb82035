package domain

import (
	"time"

	"github.com/google/uuid"
)

// PreviewLength is the number of characters kept by Preview.
const PreviewLength = 100

// PreviewEllipsis is appended to a truncated preview.
const PreviewEllipsis = "..."

// Text limits, in characters.
const (
	MaxTitleLength   = 100
	MaxAuthorLength  = 100
	MinContentLength = 10
	MaxContentLength = 100_000
)

// Text is a work of writing the user reads aloud.
// Seeded texts have IsCustom=false and must not be edited or deleted.
type Text struct {
	ID        uuid.UUID
	Title     string
	Author    string
	Content   string
	Preview   string
	IsCustom  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TextUpdateParams holds a partial update. nil fields are left unchanged.
type TextUpdateParams struct {
	Title   *string
	Author  *string
	Content *string
}

// IsEmpty reports whether no field is set.
func (p TextUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Content == nil
}

// TextWithRecording is the list-view aggregate of a Text and whether it has
// a current Recording.
type TextWithRecording struct {
	Text
	HasRecording bool
	RecordedAt   *time.Time
}

// Preview returns the first PreviewLength characters of content followed by
// PreviewEllipsis when content is longer, or content itself otherwise.
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) <= PreviewLength {
		return content
	}
	return string(runes[:PreviewLength]) + PreviewEllipsis
}

// FillDefaults completes records written before preview and updated_at
// existed.
func (t *Text) FillDefaults() {
	if t.Preview == "" {
		t.Preview = Preview(t.Content)
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}
}
