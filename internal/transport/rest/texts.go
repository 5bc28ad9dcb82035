package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/heartmarshall/recitation/internal/domain"
	"github.com/heartmarshall/recitation/internal/service/text"
)

// textService defines the minimal interface needed by TextHandler.
type textService interface {
	CreateText(ctx context.Context, input text.CreateTextInput) (*domain.Text, error)
	GetText(ctx context.Context, id uuid.UUID) (*domain.Text, error)
	ListOverview(ctx context.Context) ([]domain.TextWithRecording, error)
	UpdateText(ctx context.Context, input text.UpdateTextInput) (*domain.Text, error)
	DeleteText(ctx context.Context, id uuid.UUID) error
}

// TextHandler serves text REST endpoints.
type TextHandler struct {
	svc textService
	log *slog.Logger
}

// NewTextHandler creates a TextHandler.
func NewTextHandler(svc textService, logger *slog.Logger) *TextHandler {
	return &TextHandler{svc: svc, log: logger.With("handler", "text")}
}

// List handles GET /api/texts.
func (h *TextHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListOverview(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]textOverviewResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, toTextOverviewResponse(it))
	}
	writeData(w, http.StatusOK, resp)
}

// Create handles POST /api/texts.
func (h *TextHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.KindValidation, "invalid request body")
		return
	}

	t, err := h.svc.CreateText(r.Context(), text.CreateTextInput{
		Title:   deref(req.Title),
		Author:  deref(req.Author),
		Content: deref(req.Content),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toTextResponse(t))
}

// Get handles GET /api/texts/{id}.
func (h *TextHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.svc.GetText(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toTextResponse(t))
}

// Update handles PUT /api/texts/{id}. Omitted fields are left unchanged.
func (h *TextHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.KindValidation, "invalid request body")
		return
	}

	t, err := h.svc.UpdateText(r.Context(), text.UpdateTextInput{
		TextID:  id,
		Title:   req.Title,
		Author:  req.Author,
		Content: req.Content,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toTextResponse(t))
}

// Delete handles DELETE /api/texts/{id}.
func (h *TextHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteText(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, messageResponse{Message: "text deleted"})
}

// pathID parses a uuid route variable, writing a 400 when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.KindValidation, "invalid "+name,
			fieldError{Field: name, Message: "must be a uuid"})
		return uuid.Nil, false
	}
	return id, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
