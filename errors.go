package texlit

import "errors"

// Sentinel errors for library operations.
var (
	// Malformed document errors.
	ErrUnterminatedTag       = errors.New("unterminated tag argument")
	ErrDanglingCombiningMark = errors.New("combining mark with no base character")

	// Scheme and case errors.
	ErrUnsupportedScheme = errors.New("unsupported transliteration scheme")
	ErrUnknownCaseKind   = errors.New("unknown case kind")

	// Tag table validation errors.
	ErrInvalidTagName = errors.New("invalid tag name")
	ErrDuplicateTag   = errors.New("duplicate tag name")
	ErrNoTags         = errors.New("tag table cannot be empty")
)
