package catalog

import (
	"errors"
	"net/url"
	"path"
	"strings"
)

// Format names the encoding of a catalog document.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Document wraps a raw catalog payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument builds a Document, copying raw.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("catalog: source is required")
	}
	if len(raw) == 0 {
		return Document{}, ErrEmptyDocument
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin of the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the origin identifier.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Format guesses the encoding from the location's extension. Anything not
// ending in .yaml, .yml, or .json is treated as CSV.
func (d Document) Format() Format {
	return FormatFromLocation(d.Location())
}

// FormatFromLocation maps a file path or URL to a Format by extension.
func FormatFromLocation(location string) Format {
	p := location
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatCSV
	}
}
