package main

import (
	"errors"
	"os"

	"github.com/alnah/go-url2pdf/internal/config"
)

// Exit codes for the url2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // All targets succeeded
	ExitPartial = 1 // One or more targets failed (or unexpected error)
	ExitUsage   = 2 // Invalid flags, config, or environment values
	ExitIO      = 3 // Input file missing, output directory not writable
)

// ErrPartialFailure is returned by run when some targets failed.
// Per-target errors never abort the run; this only shapes the exit code.
var ErrPartialFailure = errors.New("some targets failed")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrOutputDir) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidOption) ||
		errors.Is(err, ErrInvalidEnvValue) {
		return ExitUsage
	}

	return ExitPartial
}
