package main

import (
	"errors"
	"os"

	dashboard "github.com/nanahubert30/Data-Analyst"
	"github.com/nanahubert30/Data-Analyst/internal/config"
	"github.com/nanahubert30/Data-Analyst/internal/dateutil"
)

// Exit codes for the nbdash CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error (including notebook parse failures)
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failures
	ExitBrowser = 4 // Browser/Chrome errors during PDF export
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, dashboard.ErrBrowserConnect) ||
		errors.Is(err, dashboard.ErrPageCreate) ||
		errors.Is(err, dashboard.ErrPageLoad) ||
		errors.Is(err, dashboard.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInputNotFound) ||
		errors.Is(err, dashboard.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dashboard.ErrUnknownEngine) ||
		errors.Is(err, dateutil.ErrInvalidFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
