// Package testhelper opens throwaway local stores for repository tests.
package testhelper

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recitation/internal/adapter/sqlite"
	"github.com/heartmarshall/recitation/internal/config"
	"github.com/heartmarshall/recitation/internal/domain"
)

// SetupTestStore opens a migrated store in a fresh temporary directory.
// The store is closed via t.Cleanup.
func SetupTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := sqlite.Open(ctx, config.StoreConfig{
		Path:        filepath.Join(t.TempDir(), "recitation.db"),
		BusyTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("testhelper: open store: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SeedText inserts a custom text with unique content and returns it.
func SeedText(t *testing.T, store *sqlite.Store) domain.Text {
	t.Helper()

	suffix := uuid.New().String()[:8]
	txt := domain.Text{
		ID:        uuid.New(),
		Title:     "Seed " + suffix,
		Content:   "Seed content for " + suffix,
		IsCustom:  true,
		CreatedAt: time.Now().UTC(),
	}
	txt.Preview = domain.Preview(txt.Content)
	txt.UpdatedAt = txt.CreatedAt

	_, err := store.DB().ExecContext(context.Background(),
		`INSERT INTO texts (id, title, author, content, preview, is_custom, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		txt.ID.String(), txt.Title, txt.Author, txt.Content, txt.Preview, txt.IsCustom,
		sqlite.FormatTime(txt.CreatedAt), sqlite.FormatTime(txt.UpdatedAt),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedText: %v", err)
	}

	return txt
}
