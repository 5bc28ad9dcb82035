package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/recitation/internal/domain"
)

// CreateTextInput holds the parameters for creating a text.
type CreateTextInput struct {
	Title   string
	Author  string
	Content string
}

// Validate checks all fields and collects all errors.
func (i CreateTextInput) Validate() error {
	var errs []domain.FieldError
	errs = validateTitle(errs, i.Title)
	errs = validateAuthor(errs, i.Author)
	errs = validateContent(errs, i.Content)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTextInput holds the parameters for updating a text.
// nil fields are left unchanged.
type UpdateTextInput struct {
	TextID  uuid.UUID
	Title   *string
	Author  *string
	Content *string
}

// Validate checks all fields and collects all errors.
func (i UpdateTextInput) Validate() error {
	var errs []domain.FieldError

	if i.TextID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "text_id", Message: "required"})
	}
	if i.Title == nil && i.Author == nil && i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.Author != nil {
		errs = validateAuthor(errs, *i.Author)
	}
	if i.Content != nil {
		errs = validateContent(errs, *i.Content)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ImportTextInput is one text of a bulk import.
type ImportTextInput struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// ImportTextsInput holds a bulk import. Custom marks the imported texts as
// user-authored; seeded built-in texts use Custom=false.
type ImportTextsInput struct {
	Texts  []ImportTextInput
	Custom bool
}

// Validate checks every text and prefixes field names with its position.
func (i ImportTextsInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Texts) == 0 {
		errs = append(errs, domain.FieldError{Field: "texts", Message: "at least one text is required"})
	}
	for n, t := range i.Texts {
		var item []domain.FieldError
		item = validateTitle(item, t.Title)
		item = validateAuthor(item, t.Author)
		item = validateContent(item, t.Content)
		for _, fe := range item {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("texts[%d].%s", n, fe.Field), Message: fe.Message})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", domain.MaxTitleLength)})
	}
	return errs
}

func validateAuthor(errs []domain.FieldError, author string) []domain.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(author)) > domain.MaxAuthorLength {
		errs = append(errs, domain.FieldError{Field: "author", Message: fmt.Sprintf("max %d characters", domain.MaxAuthorLength)})
	}
	return errs
}

func validateContent(errs []domain.FieldError, content string) []domain.FieldError {
	n := utf8.RuneCountInString(content)
	if n < domain.MinContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: fmt.Sprintf("min %d characters", domain.MinContentLength)})
	}
	if n > domain.MaxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: fmt.Sprintf("max %d characters", domain.MaxContentLength)})
	}
	return errs
}
