package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/recitation/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedText creates a custom text and returns it.
func SeedText(t *testing.T, pool *pgxpool.Pool) domain.Text {
	t.Helper()
	return seedText(t, pool, true)
}

// SeedBuiltinText creates a non-custom text and returns it.
func SeedBuiltinText(t *testing.T, pool *pgxpool.Pool) domain.Text {
	t.Helper()
	return seedText(t, pool, false)
}

func seedText(t *testing.T, pool *pgxpool.Pool, custom bool) domain.Text {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	txt := domain.Text{
		ID:        uuid.New(),
		Title:     "Seed " + suffix,
		Content:   "Seed content for " + suffix,
		IsCustom:  custom,
		CreatedAt: now,
		UpdatedAt: now,
	}
	txt.Preview = domain.Preview(txt.Content)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO texts (id, title, author, content, preview, is_custom, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		txt.ID, txt.Title, txt.Author, txt.Content, txt.Preview, txt.IsCustom, txt.CreatedAt, txt.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedText: %v", err)
	}

	return txt
}
