// Package playback hands out short-lived handles that stand for in-memory
// audio so a player can fetch it by reference.
package playback

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scheme prefixes every handle.
const Scheme = "blob:recitation/"

// Handle is an opaque reference to a live Blob.
type Handle string

// ID returns the bare identifier of h, as used in URLs.
func (h Handle) ID() string {
	return strings.TrimPrefix(string(h), Scheme)
}

// ParseHandle accepts a full handle or its bare identifier.
func ParseHandle(s string) (Handle, bool) {
	id := strings.TrimPrefix(s, Scheme)
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return Handle(Scheme + id), true
}

// Blob is the audio a handle refers to.
type Blob struct {
	Data      []byte
	MimeType  string
	CreatedAt time.Time
}

// Manager tracks outstanding handles. It keeps no persistent state.
type Manager struct {
	log *slog.Logger

	mu    sync.RWMutex
	blobs map[Handle]Blob
}

// NewManager creates an empty Manager.
func NewManager(log *slog.Logger) *Manager {
	return &Manager{
		log:   log.With("component", "playback"),
		blobs: make(map[Handle]Blob),
	}
}

// Mint registers data and returns a handle that was never issued before.
func (m *Manager) Mint(data []byte, mimeType string) Handle {
	h := Handle(Scheme + uuid.NewString())

	m.mu.Lock()
	m.blobs[h] = Blob{Data: data, MimeType: mimeType, CreatedAt: time.Now()}
	n := len(m.blobs)
	m.mu.Unlock()

	m.log.Debug("handle minted", slog.String("handle", string(h)), slog.Int("outstanding", n))
	return h
}

// Revoke releases h. It reports whether h was live; revoking an unknown or
// already revoked handle does nothing.
func (m *Manager) Revoke(h Handle) bool {
	m.mu.Lock()
	_, ok := m.blobs[h]
	delete(m.blobs, h)
	m.mu.Unlock()

	if ok {
		m.log.Debug("handle revoked", slog.String("handle", string(h)))
	}
	return ok
}

// Resolve returns the blob behind a live handle.
func (m *Manager) Resolve(h Handle) (Blob, bool) {
	m.mu.RLock()
	b, ok := m.blobs[h]
	m.mu.RUnlock()
	return b, ok
}

// Outstanding returns the number of live handles.
func (m *Manager) Outstanding() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blobs)
}

// With mints a handle for the duration of fn and revokes it afterwards,
// also when fn fails or panics.
func (m *Manager) With(ctx context.Context, data []byte, mimeType string, fn func(ctx context.Context, h Handle) error) error {
	h := m.Mint(data, mimeType)
	defer m.Revoke(h)
	return fn(ctx, h)
}

// RevokeAll releases every live handle and returns how many there were.
func (m *Manager) RevokeAll() int {
	m.mu.Lock()
	n := len(m.blobs)
	m.blobs = make(map[Handle]Blob)
	m.mu.Unlock()
	return n
}

// ServeHTTP streams the blob named by the last path segment.
// Unknown and revoked handles get 404.
func (m *Manager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h, ok := ParseHandle(path.Base(r.URL.Path))
	if !ok {
		http.NotFound(w, r)
		return
	}
	b, ok := m.Resolve(h)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if b.MimeType != "" {
		w.Header().Set("Content-Type", b.MimeType)
	}
	w.Header().Set("Cache-Control", "no-store")
	http.ServeContent(w, r, "", b.CreatedAt, bytes.NewReader(b.Data))
}
