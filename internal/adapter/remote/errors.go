package remote

import (
	"fmt"
	"net/http"

	"github.com/heartmarshall/recitation/internal/domain"
)

var sentinelByCode = map[string]error{
	domain.KindNotFound:     domain.ErrNotFound,
	domain.KindForbidden:    domain.ErrForbidden,
	domain.KindValidation:   domain.ErrValidation,
	domain.KindConflict:     domain.ErrConflict,
	domain.KindStorage:      domain.ErrStorage,
	domain.KindDataLoss:     domain.ErrDataLoss,
	domain.KindInvalidState: domain.ErrInvalidState,
}

// APIError is a failure envelope returned by the server. It unwraps to the
// domain sentinel of its code, and to a *domain.ValidationError when the
// server sent field detail.
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  []domain.FieldError
}

func newAPIError(status int, body *errorBody) *APIError {
	e := &APIError{Status: status}
	if body == nil {
		e.Code = codeForStatus(status)
		e.Message = http.StatusText(status)
		return e
	}
	e.Code = body.Code
	e.Message = body.Message
	for _, f := range body.Fields {
		e.Fields = append(e.Fields, domain.FieldError{Field: f.Field, Message: f.Message})
	}
	return e
}

// codeForStatus classifies responses that carried no envelope, such as
// those of a proxy.
func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return domain.KindValidation
	case http.StatusForbidden:
		return domain.KindForbidden
	case http.StatusNotFound:
		return domain.KindNotFound
	case http.StatusConflict:
		return domain.KindConflict
	default:
		return domain.KindStorage
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote: %d %s: %s", e.Status, e.Code, e.Message)
}

func (e *APIError) Unwrap() []error {
	var errs []error
	if s, ok := sentinelByCode[e.Code]; ok {
		errs = append(errs, s)
	} else if e.Status >= http.StatusInternalServerError {
		errs = append(errs, domain.ErrStorage)
	}
	if len(e.Fields) > 0 {
		errs = append(errs, domain.NewValidationErrors(e.Fields))
	}
	return errs
}
