package main

import (
	"errors"
	"os"

	texlit "github.com/avasant/go-texlit"
	"github.com/avasant/go-texlit/internal/config"
)

// Exit codes for the texlit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful run
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, arguments, or config
	ExitIO        = 3 // File not found, permission denied
	ExitMalformed = 4 // Malformed document or transliteration failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Malformed document errors (exit 4)
	if errors.Is(err, texlit.ErrUnterminatedTag) ||
		errors.Is(err, texlit.ErrDanglingCombiningMark) {
		return ExitMalformed
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrBadArgs) ||
		errors.Is(err, ErrOutputNotDir) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrUnknownScheme) ||
		errors.Is(err, config.ErrUnknownCase) ||
		errors.Is(err, config.ErrBadTagName) ||
		errors.Is(err, texlit.ErrUnsupportedScheme) ||
		errors.Is(err, texlit.ErrUnknownCaseKind) ||
		errors.Is(err, texlit.ErrInvalidTagName) ||
		errors.Is(err, texlit.ErrDuplicateTag) ||
		errors.Is(err, texlit.ErrNoTags) {
		return ExitUsage
	}

	return ExitGeneral
}
