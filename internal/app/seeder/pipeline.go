package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/recitation/internal/service/text"
)

// Result holds the outcome of a seeding run.
type Result struct {
	Read     int
	Pending  int // new texts found, written unless DryRun
	Inserted int
	Skipped  int
	Duration time.Duration
}

// seedFile accepts either a bare array of texts or {"texts": [...]}.
type seedFile struct {
	Texts []text.ImportTextInput `json:"texts"`
}

// Pipeline imports built-in texts, skipping titles already present.
type Pipeline struct {
	log  *slog.Logger
	svc  TextImporter
	cfg  Config
	last Result
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, svc TextImporter, cfg Config) *Pipeline {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	return &Pipeline{
		log: log.With("component", "seeder"),
		svc: svc,
		cfg: cfg,
	}
}

// Result returns the outcome of the last Run.
func (p *Pipeline) Result() Result {
	return p.last
}

// RunFile reads cfg.Path (or path when set) and runs the pipeline on it.
func (p *Pipeline) RunFile(ctx context.Context, path string) error {
	if path == "" {
		path = p.cfg.Path
	}
	if path == "" {
		return fmt.Errorf("seeder: no seed file given")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("seeder: open %s: %w", path, err)
	}
	defer f.Close()

	return p.Run(ctx, f)
}

// Run imports the texts read from r in batches of cfg.BatchSize. Each batch
// is one transaction; a failing batch stops the run.
func (p *Pipeline) Run(ctx context.Context, r io.Reader) error {
	start := time.Now()
	p.last = Result{}

	texts, err := decode(r)
	if err != nil {
		return err
	}
	p.last.Read = len(texts)

	existing, err := p.svc.ListTexts(ctx)
	if err != nil {
		return fmt.Errorf("seeder: list existing texts: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[key(t.Title, t.Author)] = true
	}

	var pending []text.ImportTextInput
	for _, t := range texts {
		k := key(t.Title, t.Author)
		if seen[k] {
			p.last.Skipped++
			p.log.DebugContext(ctx, "text already present", slog.String("title", t.Title))
			continue
		}
		seen[k] = true
		pending = append(pending, t)
	}

	p.last.Pending = len(pending)

	if p.cfg.DryRun {
		p.log.InfoContext(ctx, "dry run: nothing written",
			slog.Int("would_insert", len(pending)),
			slog.Int("skipped", p.last.Skipped),
		)
		p.last.Duration = time.Since(start)
		return nil
	}

	for from := 0; from < len(pending); from += p.cfg.BatchSize {
		to := min(from+p.cfg.BatchSize, len(pending))

		created, err := p.svc.ImportTexts(ctx, text.ImportTextsInput{Texts: pending[from:to]})
		if err != nil {
			p.last.Duration = time.Since(start)
			return fmt.Errorf("seeder: batch at %d: %w", from, err)
		}
		p.last.Inserted += len(created)
	}

	p.last.Duration = time.Since(start)
	p.log.InfoContext(ctx, "seed complete",
		slog.Int("read", p.last.Read),
		slog.Int("inserted", p.last.Inserted),
		slog.Int("skipped", p.last.Skipped),
		slog.Duration("duration", p.last.Duration),
	)
	return nil
}

func decode(r io.Reader) ([]text.ImportTextInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("seeder: read: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var texts []text.ImportTextInput
		if err := json.Unmarshal(data, &texts); err != nil {
			return nil, fmt.Errorf("seeder: decode: %w", err)
		}
		return texts, nil
	}

	var f seedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seeder: decode: %w", err)
	}
	return f.Texts, nil
}

// key identifies a text for duplicate detection.
func key(title, author string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "\x00" + strings.ToLower(strings.TrimSpace(author))
}
