package rest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/recitation/internal/domain"
	"github.com/heartmarshall/recitation/internal/playback"
	"github.com/heartmarshall/recitation/internal/service/recording"
)

// multipartOverhead is allowed on top of the audio size for form fields and
// part headers.
const multipartOverhead = 1 << 20

// recordingService defines the minimal interface needed by RecordingHandler.
type recordingService interface {
	SaveRecording(ctx context.Context, input recording.SaveRecordingInput) (*domain.Recording, error)
	GetRecording(ctx context.Context, id uuid.UUID) (*domain.Recording, error)
	GetRecordingByTextID(ctx context.Context, textID uuid.UUID) (*domain.Recording, error)
	ListRecordings(ctx context.Context) ([]*domain.Recording, error)
	DeleteRecording(ctx context.Context, id uuid.UUID) error
}

// textLister resolves titles for the recordings list.
type textLister interface {
	ListTexts(ctx context.Context) ([]*domain.Text, error)
}

// handleMinter hands out playback handles for stored audio.
type handleMinter interface {
	Mint(data []byte, mimeType string) playback.Handle
}

// RecordingHandler serves recording REST endpoints.
type RecordingHandler struct {
	svc      recordingService
	texts    textLister
	handles  handleMinter
	maxBytes int64
	validate *validator.Validate
	log      *slog.Logger
}

// NewRecordingHandler creates a RecordingHandler. maxBytes bounds the audio
// part of an upload.
func NewRecordingHandler(
	svc recordingService,
	texts textLister,
	handles handleMinter,
	maxBytes int64,
	logger *slog.Logger,
) *RecordingHandler {
	if maxBytes <= 0 {
		maxBytes = domain.MaxRecordingBytes
	}
	return &RecordingHandler{
		svc:      svc,
		texts:    texts,
		handles:  handles,
		maxBytes: maxBytes,
		validate: newFormValidator(),
		log:      logger.With("handler", "recording"),
	}
}

// uploadForm holds the text fields of a multipart recording upload.
type uploadForm struct {
	TextID     string `form:"textId"     validate:"required,uuid"`
	Duration   string `form:"duration"   validate:"required,numeric"`
	RecordedAt string `form:"recordedAt" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	MimeType   string `form:"mimeType"   validate:"omitempty,max=127"`
}

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// formErrors converts validator output into field errors.
func formErrors(err error) []fieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldError{{Field: "form", Message: err.Error()}}
	}
	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out = append(out, fieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

// List handles GET /api/recordings, newest first.
func (h *RecordingHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.ListRecordings(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	texts, err := h.texts.ListTexts(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	titles := make(map[uuid.UUID]string, len(texts))
	for _, t := range texts {
		titles[t.ID] = t.Title
	}

	resp := make([]recordingResponse, 0, len(recs))
	for _, rec := range recs {
		item := toRecordingResponse(rec)
		item.TextTitle = titles[rec.TextID]
		resp = append(resp, item)
	}
	writeData(w, http.StatusOK, resp)
}

// Upload handles POST /api/recordings. It replaces any existing recording of
// the text.
func (h *RecordingHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, domain.KindValidation,
				fmt.Sprintf("audio exceeds %d bytes", h.maxBytes),
				fieldError{Field: "audioFile", Message: fmt.Sprintf("max %d bytes", h.maxBytes)})
			return
		}
		writeError(w, http.StatusBadRequest, domain.KindValidation, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	form := uploadForm{
		TextID:     r.FormValue("textId"),
		Duration:   r.FormValue("duration"),
		RecordedAt: r.FormValue("recordedAt"),
		MimeType:   r.FormValue("mimeType"),
	}
	if err := h.validate.Struct(form); err != nil {
		writeError(w, http.StatusBadRequest, domain.KindValidation, "the request is invalid", formErrors(err)...)
		return
	}

	file, header, err := r.FormFile("audioFile")
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.KindValidation, "the request is invalid",
			fieldError{Field: "audioFile", Message: "required"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		handleError(w, r, h.log, fmt.Errorf("read audio: %w", err))
		return
	}

	mimeType := form.MimeType
	if mimeType == "" {
		mimeType = partMimeType(header.Header.Get("Content-Type"))
	}

	// Validated above.
	textID := uuid.MustParse(form.TextID)
	duration, _ := strconv.ParseFloat(form.Duration, 64)
	recordedAt, _ := time.Parse(time.RFC3339, form.RecordedAt)

	rec, err := h.svc.SaveRecording(r.Context(), recording.SaveRecordingInput{
		TextID:     textID,
		Audio:      audio,
		MimeType:   mimeType,
		Duration:   duration,
		RecordedAt: recordedAt,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toRecordingResponse(rec))
}

// partMimeType drops the generic type clients send for unnamed blobs so the
// service can sniff the real one.
func partMimeType(ct string) string {
	if ct == "" || domain.BaseMimeType(ct) == "application/octet-stream" {
		return ""
	}
	return ct
}

// Get handles GET /api/recordings/{id}.
func (h *RecordingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.svc.GetRecording(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toRecordingResponse(rec))
}

// Audio handles GET /api/recordings/{id}/audio and streams the raw bytes.
func (h *RecordingHandler) Audio(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.svc.GetRecording(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", rec.MimeType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("inline; filename=%q", rec.ID.String()+"."+domain.FileExtension(rec.MimeType)))
	http.ServeContent(w, r, "", rec.CreatedAt, bytes.NewReader(rec.Audio))
}

// ByText handles GET /api/recordings/by-text/{textId}. A text without a
// recording yields data null.
func (h *RecordingHandler) ByText(w http.ResponseWriter, r *http.Request) {
	textID, ok := pathID(w, r, "textId")
	if !ok {
		return
	}

	rec, err := h.svc.GetRecordingByTextID(r.Context(), textID)
	if errors.Is(err, domain.ErrNotFound) {
		writeData(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toRecordingResponse(rec))
}

// Delete handles DELETE /api/recordings/{id}.
func (h *RecordingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteRecording(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, messageResponse{Message: "recording deleted"})
}

// MintHandle handles POST /api/recordings/{id}/handles.
func (h *RecordingHandler) MintHandle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.svc.GetRecording(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	handle := h.handles.Mint(rec.Audio, rec.MimeType)
	writeData(w, http.StatusCreated, handleResponse{
		Handle: string(handle),
		URL:    handlesPrefix + handle.ID(),
	})
}
