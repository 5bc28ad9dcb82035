// Package sqlite implements the local store: a single-file SQLite database
// holding texts and recordings, opened once per process and shared by the
// repositories.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/heartmarshall/recitation/internal/config"
	"github.com/heartmarshall/recitation/internal/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is an open local database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at cfg.Path and applies pending
// migrations. Migrations only add tables, columns and indexes, so a file
// written by an older version keeps its data.
func Open(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" && cfg.Path != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create store dir: %w", domain.ErrStorage, err)
		}
	}

	db, err := sql.Open("sqlite", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %w", domain.ErrStorage, err)
	}

	// SQLite allows one writer; a single connection also keeps the
	// per-connection pragmas in force for every statement.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database: %w", domain.ErrStorage, err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, path: cfg.Path}, nil
}

func dsn(cfg config.StoreConfig) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))
	q.Add("_txlock", "immediate")
	return "file:" + cfg.Path + "?" + q.Encode()
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("%w: migrations fs: %w", domain.ErrStorage, err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("%w: goose new provider: %w", domain.ErrStorage, err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("%w: goose up: %w", domain.ErrStorage, err)
	}

	return nil
}

// DB returns the underlying handle.
func (s *Store) DB() *sql.DB { return s.db }

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping database: %w", domain.ErrStorage, err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ---------------------------------------------------------------------------
// Provider
// ---------------------------------------------------------------------------

// Provider opens the store on first use and hands the same Store to every
// later caller. A failed open is not cached; the next Get retries.
type Provider struct {
	cfg config.StoreConfig

	mu    sync.Mutex
	store *Store
}

// NewProvider creates a Provider for the given configuration.
func NewProvider(cfg config.StoreConfig) *Provider {
	return &Provider{cfg: cfg}
}

// Get returns the shared Store, opening it if needed.
func (p *Provider) Get(ctx context.Context) (*Store, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store != nil {
		return p.store, nil
	}

	s, err := Open(ctx, p.cfg)
	if err != nil {
		return nil, err
	}
	p.store = s
	return s, nil
}

// Close closes the store if it was opened. Get after Close reopens it.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store == nil {
		return nil
	}
	err := p.store.Close()
	p.store = nil
	return err
}
