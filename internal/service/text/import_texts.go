package text

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/recitation/internal/domain"
)

// ImportTexts validates and inserts a batch of texts in one transaction.
// Either every text is stored or none is. Texts keep their input order.
func (s *Service) ImportTexts(ctx context.Context, input ImportTextsInput) ([]*domain.Text, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	batch := make([]*domain.Text, len(input.Texts))
	for i, t := range input.Texts {
		batch[i] = &domain.Text{
			Title:    strings.TrimSpace(t.Title),
			Author:   strings.TrimSpace(t.Author),
			Content:  t.Content,
			IsCustom: input.Custom,
		}
	}

	var created []*domain.Text
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.texts.CreateBatch(txCtx, batch)
		if err != nil {
			return fmt.Errorf("import texts: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate()

	s.log.InfoContext(ctx, "texts imported",
		slog.Int("count", len(created)),
		slog.Bool("custom", input.Custom),
	)

	return created, nil
}
