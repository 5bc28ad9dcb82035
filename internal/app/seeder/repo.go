// Package seeder loads the built-in texts shipped with the application.
package seeder

import (
	"context"

	"github.com/heartmarshall/recitation/internal/domain"
	"github.com/heartmarshall/recitation/internal/service/text"
)

// TextImporter is the text service contract consumed by the pipeline.
// Implemented by text.Service.
type TextImporter interface {
	ListTexts(ctx context.Context) ([]*domain.Text, error)
	ImportTexts(ctx context.Context, input text.ImportTextsInput) ([]*domain.Text, error)
}
