// Package text implements the Text repository using PostgreSQL.
package text

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/recitation/internal/adapter/postgres"
	"github.com/heartmarshall/recitation/internal/domain"
)

const table = "texts"

var columns = []string{"id", "title", "author", "content", "preview", "is_custom", "created_at", "updated_at"}

// Repo provides text persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new text repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type textRow struct {
	ID        uuid.UUID  `db:"id"`
	Title     string     `db:"title"`
	Author    string     `db:"author"`
	Content   string     `db:"content"`
	Preview   *string    `db:"preview"`
	IsCustom  bool       `db:"is_custom"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a text by primary key.
// Returns domain.ErrNotFound if the text does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Text, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get text: %w", err)
	}

	var row textRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "text", id)
	}

	return toDomainText(row), nil
}

// List returns all texts oldest first, ties broken by id.
// Returns an empty slice (not nil) when there are no texts.
func (r *Repo) List(ctx context.Context) ([]*domain.Text, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list texts: %w", err)
	}

	var rows []textRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "text", uuid.Nil)
	}

	texts := make([]*domain.Text, len(rows))
	for i, row := range rows {
		texts[i] = toDomainText(row)
	}
	return texts, nil
}

// Count returns the number of stored texts.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM texts`).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "text", uuid.Nil)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a text and returns the persisted value. Preview is derived
// from content; id and created_at are assigned when missing.
func (r *Repo) Create(ctx context.Context, t *domain.Text) (*domain.Text, error) {
	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	ins := postgres.Builder().
		Insert(table).
		Columns("id", "title", "author", "content", "preview", "is_custom", "created_at", "updated_at")

	preview := domain.Preview(t.Content)
	if t.CreatedAt.IsZero() {
		ins = ins.Values(id, t.Title, t.Author, t.Content, preview, t.IsCustom, sq.Expr("now()"), sq.Expr("now()"))
	} else {
		ins = ins.Values(id, t.Title, t.Author, t.Content, preview, t.IsCustom, t.CreatedAt, t.CreatedAt)
	}

	query, args, err := ins.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert text: %w", err)
	}

	var row textRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "text", id)
	}

	return toDomainText(row), nil
}

// CreateBatch inserts several texts with the caller's transaction, if any.
// Texts without created_at are stamped a microsecond apart so they keep
// their input order.
func (r *Repo) CreateBatch(ctx context.Context, texts []*domain.Text) ([]*domain.Text, error) {
	base := time.Now().UTC().Truncate(time.Microsecond)
	out := make([]*domain.Text, 0, len(texts))
	for i, t := range texts {
		in := *t
		if in.CreatedAt.IsZero() {
			in.CreatedAt = base.Add(time.Duration(i) * time.Microsecond)
		}
		created, err := r.Create(ctx, &in)
		if err != nil {
			return nil, fmt.Errorf("create text %d: %w", i, err)
		}
		out = append(out, created)
	}
	return out, nil
}

// Update applies a partial update. Preview is recomputed only when content
// changes; updated_at is refreshed on every call.
// Returns domain.ErrNotFound if the text does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.TextUpdateParams) (*domain.Text, error) {
	upd := postgres.Builder().
		Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if params.Title != nil {
		upd = upd.Set("title", *params.Title)
	}
	if params.Author != nil {
		upd = upd.Set("author", *params.Author)
	}
	if params.Content != nil {
		// Compared in SQL so an unchanged content keeps its stored preview.
		upd = upd.
			Set("preview", sq.Expr("CASE WHEN content = ? THEN preview ELSE ? END", *params.Content, domain.Preview(*params.Content))).
			Set("content", *params.Content)
	}

	query, args, err := upd.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update text: %w", err)
	}

	var row textRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "text", id)
	}

	return toDomainText(row), nil
}

// Delete removes a text; its recording goes with it through the foreign key
// cascade.
// Returns domain.ErrNotFound if the text does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM texts WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "text", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("text %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func columnList() string {
	return strings.Join(columns, ", ")
}

func toDomainText(row textRow) *domain.Text {
	t := &domain.Text{
		ID:        row.ID,
		Title:     row.Title,
		Author:    row.Author,
		Content:   row.Content,
		IsCustom:  row.IsCustom,
		CreatedAt: row.CreatedAt.UTC(),
	}
	if row.Preview != nil {
		t.Preview = *row.Preview
	}
	if row.UpdatedAt != nil {
		t.UpdatedAt = row.UpdatedAt.UTC()
	}
	t.FillDefaults()
	return t
}
