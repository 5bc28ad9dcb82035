package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/recitation/internal/domain"
	"github.com/heartmarshall/recitation/pkg/ctxutil"
)

type successBody struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type failureBody struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successBody{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, code, message string, fields ...fieldError) {
	writeJSON(w, status, failureBody{
		Error: errorBody{Code: code, Message: message, Fields: fields},
	})
}

// statusForKind maps a domain error kind to an HTTP status.
func statusForKind(kind string) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict, domain.KindInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the failure envelope for err. Server faults are logged.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	kind := domain.Kind(err)
	status := statusForKind(kind)

	var fields []fieldError
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			fields = append(fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
	}

	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
	}

	writeError(w, status, kind, domain.Message(err), fields...)
}
