package rest

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/recitation/internal/domain"
	"github.com/heartmarshall/recitation/internal/playback"
)

// handlesPrefix is where minted handles are served.
const handlesPrefix = "/api/handles/"

// handleStore streams and revokes playback handles.
type handleStore interface {
	http.Handler
	Revoke(h playback.Handle) bool
}

// HandleHandler serves playback handle endpoints.
type HandleHandler struct {
	store handleStore
	log   *slog.Logger
}

// NewHandleHandler creates a HandleHandler.
func NewHandleHandler(store handleStore, logger *slog.Logger) *HandleHandler {
	return &HandleHandler{store: store, log: logger.With("handler", "handle")}
}

// Stream handles GET /api/handles/{handle}.
func (h *HandleHandler) Stream(w http.ResponseWriter, r *http.Request) {
	h.store.ServeHTTP(w, r)
}

// Revoke handles DELETE /api/handles/{handle}. Revoking twice yields 404.
func (h *HandleHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	handle, ok := playback.ParseHandle(mux.Vars(r)["handle"])
	if !ok || !h.store.Revoke(handle) {
		handleError(w, r, h.log, domain.ErrNotFound)
		return
	}
	writeData(w, http.StatusOK, messageResponse{Message: "handle revoked"})
}
