// Package recording implements the Recording repository over the local
// SQLite store. A unique index on text_id keeps at most one recording per
// text.
package recording

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

const table = "recordings"

var columns = []string{"id", "text_id", "audio", "duration", "file_size", "mime_type", "recorded_at", "created_at"}

// Repo provides recording persistence backed by SQLite.
type Repo struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new recording repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db, now: time.Now}
}

type recordingRow struct {
	ID         string  `db:"id"`
	TextID     string  `db:"text_id"`
	Audio      []byte  `db:"audio"`
	Duration   float64 `db:"duration"`
	FileSize   int64   `db:"file_size"`
	MimeType   string  `db:"mime_type"`
	RecordedAt string  `db:"recorded_at"`
	CreatedAt  string  `db:"created_at"`
}

type indexRow struct {
	TextID     string `db:"text_id"`
	RecordedAt string `db:"recorded_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a recording by primary key.
// Returns domain.ErrNotFound if the recording does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recording, error) {
	return r.getOne(ctx, sq.Eq{"id": id.String()}, id)
}

// GetByTextID returns the recording of a text. Should a store hold more than
// one (data written before the unique index existed), the earliest stored
// one is returned, with id as tie-break.
// Returns domain.ErrNotFound if the text has no recording.
func (r *Repo) GetByTextID(ctx context.Context, textID uuid.UUID) (*domain.Recording, error) {
	return r.getOne(ctx, sq.Eq{"text_id": textID.String()}, textID)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, id uuid.UUID) (*domain.Recording, error) {
	query, args, err := sqlite.Builder().
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
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, sqlite.MapError(err, "recording", id)
	}

	return toDomainRecording(row)
}

// List returns all recordings, most recently recorded first.
// Returns an empty slice (not nil) when there are no recordings.
func (r *Repo) List(ctx context.Context) ([]*domain.Recording, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		OrderBy("recorded_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list recordings: %w", err)
	}

	var rows []recordingRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "recording", uuid.Nil)
	}

	recs := make([]*domain.Recording, 0, len(rows))
	for _, row := range rows {
		rec, err := toDomainRecording(row)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// TextIndex maps every text that has a recording to that recording's
// recorded_at. Audio is not read.
func (r *Repo) TextIndex(ctx context.Context) (map[uuid.UUID]time.Time, error) {
	query, args, err := sqlite.Builder().
		Select("text_id", "recorded_at").
		From(table).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recording index: %w", err)
	}

	var rows []indexRow
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "recording", uuid.Nil)
	}

	// Rows arrive newest first, so the earliest stored recording of a text
	// is written last and wins, matching GetByTextID.
	index := make(map[uuid.UUID]time.Time, len(rows))
	for _, row := range rows {
		textID, err := uuid.Parse(row.TextID)
		if err != nil {
			return nil, fmt.Errorf("%w: recording text id %q: %w", domain.ErrStorage, row.TextID, err)
		}
		recordedAt, err := sqlite.ParseTime(row.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: recording of text %s: %w", domain.ErrStorage, textID, err)
		}
		index[textID] = recordedAt
	}

	return index, nil
}

// Count returns the number of stored recordings.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := sqlite.Builder().Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count recordings: %w", err)
	}

	var n int
	if err := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, sqlite.MapError(err, "recording", uuid.Nil)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a recording and returns the persisted value. A missing id
// or created_at is assigned here and file_size is taken from the audio.
// Returns domain.ErrNotFound if the text does not exist and
// domain.ErrAlreadyExists if it already has a recording.
func (r *Repo) Create(ctx context.Context, rec *domain.Recording) (*domain.Recording, error) {
	out := *rec
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}
	if out.CreatedAt.IsZero() {
		out.CreatedAt = r.now()
	}
	out.CreatedAt = out.CreatedAt.UTC()
	out.RecordedAt = out.RecordedAt.UTC()
	out.FileSize = int64(len(out.Audio))

	query, args, err := sqlite.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			out.ID.String(), out.TextID.String(), out.Audio, out.Duration, out.FileSize, out.MimeType,
			sqlite.FormatTime(out.RecordedAt), sqlite.FormatTime(out.CreatedAt),
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert recording: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return nil, sqlite.MapError(err, "recording", out.ID)
	}

	return &out, nil
}

// Delete removes one recording.
// Returns domain.ErrNotFound if the recording does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.delete(ctx, sq.Eq{"id": id.String()}, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("recording %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByTextID removes every recording of a text and reports how many
// were removed. Zero is not an error.
func (r *Repo) DeleteByTextID(ctx context.Context, textID uuid.UUID) (int64, error) {
	return r.delete(ctx, sq.Eq{"text_id": textID.String()}, textID)
}

func (r *Repo) delete(ctx context.Context, where sq.Eq, id uuid.UUID) (int64, error) {
	query, args, err := sqlite.Builder().Delete(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete recording: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlite.MapError(err, "recording", id)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, sqlite.MapError(err, "recording", id)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainRecording(row recordingRow) (*domain.Recording, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: recording id %q: %w", domain.ErrStorage, row.ID, err)
	}
	textID, err := uuid.Parse(row.TextID)
	if err != nil {
		return nil, fmt.Errorf("%w: recording %s text id: %w", domain.ErrStorage, id, err)
	}
	recordedAt, err := sqlite.ParseTime(row.RecordedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: recording %s: %w", domain.ErrStorage, id, err)
	}
	createdAt, err := sqlite.ParseTime(row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: recording %s: %w", domain.ErrStorage, id, err)
	}

	mimeType := row.MimeType
	if mimeType == "" {
		mimeType = domain.DefaultMimeType
	}

	return &domain.Recording{
		ID:         id,
		TextID:     textID,
		Audio:      row.Audio,
		Duration:   row.Duration,
		FileSize:   row.FileSize,
		MimeType:   mimeType,
		RecordedAt: recordedAt,
		CreatedAt:  createdAt,
	}, nil
}
