// Package textlist caches the list view of all texts with their recording
// status.
package textlist

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/recitation/internal/domain"
)

// DefaultTTL is how long a computed list stays fresh.
const DefaultTTL = 5 * time.Minute

type textLister interface {
	List(ctx context.Context) ([]*domain.Text, error)
}

type recordingIndexer interface {
	TextIndex(ctx context.Context) (map[uuid.UUID]time.Time, error)
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithTTL sets the freshness window. Non-positive values keep DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// Cache holds the last computed list until it expires or is invalidated.
type Cache struct {
	texts      textLister
	recordings recordingIndexer
	log        *slog.Logger
	now        func() time.Time
	ttl        time.Duration

	group singleflight.Group

	mu       sync.Mutex
	items    []domain.TextWithRecording
	loadedAt time.Time
	valid    bool
	gen      uint64
}

// New creates an empty Cache.
func New(log *slog.Logger, texts textLister, recordings recordingIndexer, opts ...Option) *Cache {
	c := &Cache{
		texts:      texts,
		recordings: recordings,
		log:        log.With("component", "textlist"),
		now:        time.Now,
		ttl:        DefaultTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached list while it is fresh, otherwise recomputes it.
// Concurrent misses share one recompute. The returned slice is a copy.
func (c *Cache) Get(ctx context.Context) ([]domain.TextWithRecording, error) {
	c.mu.Lock()
	if c.freshLocked() {
		items := clone(c.items)
		c.mu.Unlock()
		return items, nil
	}
	gen := c.gen
	c.mu.Unlock()

	v, err, _ := c.group.Do(fmt.Sprint(gen), func() (any, error) {
		c.mu.Lock()
		if c.gen == gen && c.freshLocked() {
			items := c.items
			c.mu.Unlock()
			return items, nil
		}
		c.mu.Unlock()

		items, err := c.load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		// A mutation during the load leaves the result uncached.
		if c.gen == gen {
			c.items = items
			c.loadedAt = c.now()
			c.valid = true
		}
		c.mu.Unlock()

		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return clone(v.([]domain.TextWithRecording)), nil
}

// freshLocked reports whether the cached list can be served. c.mu must be held.
func (c *Cache) freshLocked() bool {
	return c.valid && c.now().Sub(c.loadedAt) < c.ttl
}

// Invalidate forces the next Get to recompute.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.valid = false
	c.gen++
	c.mu.Unlock()
}

func (c *Cache) load(ctx context.Context) ([]domain.TextWithRecording, error) {
	texts, err := c.texts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load text list: %w", err)
	}
	index, err := c.recordings.TextIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recording index: %w", err)
	}

	items := make([]domain.TextWithRecording, len(texts))
	for i, t := range texts {
		items[i] = domain.TextWithRecording{Text: *t}
		if at, ok := index[t.ID]; ok {
			at := at
			items[i].HasRecording = true
			items[i].RecordedAt = &at
		}
	}

	c.log.DebugContext(ctx, "text list recomputed", slog.Int("count", len(items)))
	return items, nil
}

func clone(items []domain.TextWithRecording) []domain.TextWithRecording {
	if items == nil {
		return nil
	}
	out := make([]domain.TextWithRecording, len(items))
	copy(out, items)
	return out
}
