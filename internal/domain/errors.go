package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrStorage marks an I/O or quota failure of the underlying store.
	ErrStorage = errors.New("storage error")
	// ErrRollbackFailed is reported by a transaction manager when a failed
	// transaction could not be rolled back.
	ErrRollbackFailed = errors.New("rollback failed")
	// ErrDataLoss means a replace removed the previous recording but could
	// not store the new one.
	ErrDataLoss = errors.New("data loss")

	ErrPermissionDenied       = errors.New("capture permission denied")
	ErrDeviceUnavailable      = errors.New("capture device unavailable")
	ErrUnsupportedEnvironment = errors.New("capture unsupported in this environment")
	ErrInvalidState           = errors.New("invalid state")
)

// Machine-readable error kinds exposed at the boundary.
const (
	KindPermissionDenied       = "PERMISSION_DENIED"
	KindDeviceUnavailable      = "DEVICE_UNAVAILABLE"
	KindUnsupportedEnvironment = "UNSUPPORTED_ENVIRONMENT"
	KindNotFound               = "NOT_FOUND"
	KindForbidden              = "FORBIDDEN"
	KindStorage                = "STORAGE_ERROR"
	KindDataLoss               = "DATA_LOSS"
	KindValidation             = "VALIDATION_ERROR"
	KindConflict               = "CONFLICT"
	KindInvalidState           = "INVALID_STATE"
	KindInternal               = "INTERNAL_ERROR"
)

// kindTable is ordered: ErrDataLoss wraps storage failures, so it must be
// matched before ErrStorage.
var kindTable = []struct {
	err     error
	kind    string
	message string
}{
	{ErrDataLoss, KindDataLoss, "the previous recording was removed but the new one could not be saved"},
	{ErrPermissionDenied, KindPermissionDenied, "microphone access was not granted"},
	{ErrDeviceUnavailable, KindDeviceUnavailable, "no microphone was found"},
	{ErrUnsupportedEnvironment, KindUnsupportedEnvironment, "recording is not supported in this environment"},
	{ErrValidation, KindValidation, "the request is invalid"},
	{ErrNotFound, KindNotFound, "the requested item does not exist"},
	{ErrForbidden, KindForbidden, "built-in texts cannot be modified"},
	{ErrAlreadyExists, KindConflict, "the item already exists"},
	{ErrConflict, KindConflict, "the item was modified concurrently"},
	{ErrInvalidState, KindInvalidState, "the operation is not allowed in the current state"},
	{ErrStorage, KindStorage, "the local store failed"},
}

// Kind returns the stable machine-readable kind of err.
// Unknown errors map to KindInternal; nil maps to "".
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kindTable {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// Message returns a human-readable description of err suitable for end users.
// Validation errors keep their field detail.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	for _, k := range kindTable {
		if errors.Is(err, k.err) {
			return k.message
		}
	}
	return "an unexpected error occurred"
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
