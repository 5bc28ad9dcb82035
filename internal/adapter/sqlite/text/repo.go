// Package text implements the Text repository over the local SQLite store.
package text

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/recitation/internal/adapter/sqlite"
	"github.com/heartmarshall/recitation/internal/domain"
)

const table = "texts"

var columns = []string{"id", "title", "author", "content", "preview", "is_custom", "created_at", "updated_at"}

// Repo provides text persistence backed by SQLite.
type Repo struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new text repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db, now: time.Now}
}

// textRow mirrors a texts row. preview and updated_at are NULL in rows
// written before those columns were populated.
type textRow struct {
	ID        string         `db:"id"`
	Title     string         `db:"title"`
	Author    string         `db:"author"`
	Content   string         `db:"content"`
	Preview   sql.NullString `db:"preview"`
	IsCustom  bool           `db:"is_custom"`
	CreatedAt string         `db:"created_at"`
	UpdatedAt sql.NullString `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a text by primary key.
// Returns domain.ErrNotFound if the text does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Text, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get text: %w", err)
	}

	var row textRow
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, sqlite.MapError(err, "text", id)
	}

	return toDomainText(row)
}

// List returns all texts oldest first. Ties on created_at are broken by id.
// Returns an empty slice (not nil) when there are no texts.
func (r *Repo) List(ctx context.Context) ([]*domain.Text, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list texts: %w", err)
	}

	var rows []textRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "text", uuid.Nil)
	}

	texts := make([]*domain.Text, 0, len(rows))
	for _, row := range rows {
		t, err := toDomainText(row)
		if err != nil {
			return nil, err
		}
		texts = append(texts, t)
	}

	return texts, nil
}

// Count returns the number of stored texts.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := sqlite.Builder().Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count texts: %w", err)
	}

	var n int
	if err := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, sqlite.MapError(err, "text", uuid.Nil)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a text and returns the persisted value. A missing id or
// created_at is assigned here; preview is always derived from content and
// updated_at starts equal to created_at.
func (r *Repo) Create(ctx context.Context, t *domain.Text) (*domain.Text, error) {
	out := *t
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}
	if out.CreatedAt.IsZero() {
		out.CreatedAt = r.now()
	}
	out.CreatedAt = out.CreatedAt.UTC()
	out.UpdatedAt = out.CreatedAt
	out.Preview = domain.Preview(out.Content)

	query, args, err := sqlite.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			out.ID.String(), out.Title, out.Author, out.Content, out.Preview, out.IsCustom,
			sqlite.FormatTime(out.CreatedAt), sqlite.FormatTime(out.UpdatedAt),
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert text: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return nil, sqlite.MapError(err, "text", out.ID)
	}

	return &out, nil
}

// CreateBatch inserts several texts with the caller's transaction, if any.
// Texts without created_at are stamped a microsecond apart so they keep
// their input order.
func (r *Repo) CreateBatch(ctx context.Context, texts []*domain.Text) ([]*domain.Text, error) {
	base := r.now()
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
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := sqlite.Builder().Update(table).Where(sq.Eq{"id": id.String()})

	if params.Title != nil {
		current.Title = *params.Title
		upd = upd.Set("title", current.Title)
	}
	if params.Author != nil {
		current.Author = *params.Author
		upd = upd.Set("author", current.Author)
	}
	if params.Content != nil && *params.Content != current.Content {
		current.Content = *params.Content
		current.Preview = domain.Preview(current.Content)
		upd = upd.Set("content", current.Content).Set("preview", current.Preview)
	}

	current.UpdatedAt = r.now().UTC()
	upd = upd.Set("updated_at", sqlite.FormatTime(current.UpdatedAt))

	query, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update text: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, "text", id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("text %s: %w", id, domain.ErrNotFound)
	}

	return current, nil
}

// Delete removes a text. Its recording, if any, goes with it through the
// foreign key cascade.
// Returns domain.ErrNotFound if the text does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := sqlite.Builder().Delete(table).Where(sq.Eq{"id": id.String()}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete text: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "text", id)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return sqlite.MapError(err, "text", id)
	}
	if n == 0 {
		return fmt.Errorf("text %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainText(row textRow) (*domain.Text, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: text id %q: %w", domain.ErrStorage, row.ID, err)
	}
	createdAt, err := sqlite.ParseTime(row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: text %s: %w", domain.ErrStorage, id, err)
	}
	updatedAt, err := sqlite.ParseNullTime(row.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: text %s: %w", domain.ErrStorage, id, err)
	}

	t := &domain.Text{
		ID:        id,
		Title:     row.Title,
		Author:    row.Author,
		Content:   row.Content,
		Preview:   row.Preview.String,
		IsCustom:  row.IsCustom,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	t.FillDefaults()
	return t, nil
}
