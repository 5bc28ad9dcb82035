package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/heartmarshall/recitation/internal/domain"
)

var (
	// ErrRemoteSeed indicates seed was run against the remote driver.
	ErrRemoteSeed = errors.New("seed writes built-in texts and needs a local store")

	// ErrInvalidID indicates an argument is not a UUID.
	ErrInvalidID = errors.New("invalid id")
)

// Exit codes.
const (
	ExitOK         = 0
	ExitGeneral    = 1
	ExitUsage      = 2
	ExitSetup      = 3
	ExitValidation = 4
	ExitNotFound   = 5
	ExitInterrupt  = 130
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupt
	case isCobraUsageError(err), errors.Is(err, ErrInvalidID):
		return ExitUsage
	case errors.Is(err, domain.ErrPermissionDenied),
		errors.Is(err, domain.ErrDeviceUnavailable),
		errors.Is(err, domain.ErrUnsupportedEnvironment),
		errors.Is(err, ErrRemoteSeed):
		return ExitSetup
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrForbidden):
		return ExitValidation
	case errors.Is(err, domain.ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneral
	}
}

// Cobra has no typed usage errors.
var cobraUsageErrorPatterns = []string{
	"required flag",
	"unknown flag",
	"unknown shorthand",
	"unknown command",
	"flag needs an argument",
	"invalid argument",
	"accepts ",
	"requires at least",
	"requires at most",
}

func isCobraUsageError(err error) bool {
	msg := err.Error()
	for _, pattern := range cobraUsageErrorPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
