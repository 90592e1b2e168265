package catalog

import "errors"

var (
	// ErrNotFound is returned when no record matches a lookup.
	ErrNotFound = errors.New("catalog: prompt not found")
	// ErrEmptyDocument is returned for zero-length payloads.
	ErrEmptyDocument = errors.New("catalog: document is empty")
	// ErrMissingColumn is returned when a CSV header lacks act or prompt.
	ErrMissingColumn = errors.New("catalog: missing required column")
	// ErrUnsupportedFormat is returned for formats the parser cannot decode.
	ErrUnsupportedFormat = errors.New("catalog: unsupported format")
)
