// Package recording implements the Recording repository using PostgreSQL.
// A unique index on text_id keeps at most one recording per text.
package recording

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

const table = "recordings"

var columns = []string{"id", "text_id", "audio", "duration", "file_size", "mime_type", "recorded_at", "created_at"}

// Repo provides recording persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recording repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type recordingRow struct {
	ID         uuid.UUID `db:"id"`
	TextID     uuid.UUID `db:"text_id"`
	Audio      []byte    `db:"audio"`
	Duration   float64   `db:"duration"`
	FileSize   int64     `db:"file_size"`
	MimeType   string    `db:"mime_type"`
	RecordedAt time.Time `db:"recorded_at"`
	CreatedAt  time.Time `db:"created_at"`
}

type indexRow struct {
	TextID     uuid.UUID `db:"text_id"`
	RecordedAt time.Time `db:"recorded_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a recording by primary key.
// Returns domain.ErrNotFound if the recording does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recording, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByTextID returns the recording of a text, the earliest stored one
// should there be several.
// Returns domain.ErrNotFound if the text has no recording.
func (r *Repo) GetByTextID(ctx context.Context, textID uuid.UUID) (*domain.Recording, error) {
	return r.getOne(ctx, sq.Eq{"text_id": textID}, textID)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, id uuid.UUID) (*domain.Recording, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at ASC", "id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get recording: %w", err)
	}

	var row recordingRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "recording", id)
	}

	return toDomainRecording(row), nil
}

// List returns all recordings, most recently recorded first.
// Returns an empty slice (not nil) when there are no recordings.
func (r *Repo) List(ctx context.Context) ([]*domain.Recording, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("recorded_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list recordings: %w", err)
	}

	var rows []recordingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "recording", uuid.Nil)
	}

	recs := make([]*domain.Recording, len(rows))
	for i, row := range rows {
		recs[i] = toDomainRecording(row)
	}
	return recs, nil
}

// TextIndex maps every text that has a recording to that recording's
// recorded_at. Audio is not read.
func (r *Repo) TextIndex(ctx context.Context) (map[uuid.UUID]time.Time, error) {
	const query = `
SELECT DISTINCT ON (text_id) text_id, recorded_at
FROM recordings
ORDER BY text_id, created_at ASC, id ASC`

	var rows []indexRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query); err != nil {
		return nil, postgres.MapError(err, "recording", uuid.Nil)
	}

	index := make(map[uuid.UUID]time.Time, len(rows))
	for _, row := range rows {
		index[row.TextID] = row.RecordedAt.UTC()
	}
	return index, nil
}

// Count returns the number of stored recordings.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM recordings`).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "recording", uuid.Nil)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a recording and returns the persisted value. file_size is
// taken from the audio; id and created_at are assigned when missing.
// Returns domain.ErrNotFound if the text does not exist and
// domain.ErrAlreadyExists if it already has a recording.
func (r *Repo) Create(ctx context.Context, rec *domain.Recording) (*domain.Recording, error) {
	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var createdAt any = sq.Expr("now()")
	if !rec.CreatedAt.IsZero() {
		createdAt = rec.CreatedAt
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(id, rec.TextID, rec.Audio, rec.Duration, int64(len(rec.Audio)), rec.MimeType, rec.RecordedAt, createdAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert recording: %w", err)
	}

	var row recordingRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "recording", id)
	}

	return toDomainRecording(row), nil
}

// Delete removes one recording.
// Returns domain.ErrNotFound if the recording does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM recordings WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "recording", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recording %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByTextID removes every recording of a text and reports how many
// were removed. Zero is not an error.
func (r *Repo) DeleteByTextID(ctx context.Context, textID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM recordings WHERE text_id = $1`, textID)
	if err != nil {
		return 0, postgres.MapError(err, "recording", textID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainRecording(row recordingRow) *domain.Recording {
	mimeType := row.MimeType
	if mimeType == "" {
		mimeType = domain.DefaultMimeType
	}

	return &domain.Recording{
		ID:         row.ID,
		TextID:     row.TextID,
		Audio:      row.Audio,
		Duration:   row.Duration,
		FileSize:   row.FileSize,
		MimeType:   mimeType,
		RecordedAt: row.RecordedAt.UTC(),
		CreatedAt:  row.CreatedAt.UTC(),
	}
}
