package catalog

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Source identifies where a catalog document originated.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source naming an entry inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL returns a Source for an HTTP(S) endpoint. It panics on an
// invalid URL to surface configuration mistakes early; use ParseSource for
// user input.
func SourceFromURL(raw string) Source {
	src, err := parseURLSource(raw)
	if err != nil {
		panic(err)
	}
	return src
}

// ParseSource interprets user input (a CLI flag, a config value) as a URL when
// it carries an http or https scheme and as a file path otherwise.
func ParseSource(raw string) (Source, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("catalog: source is required")
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return parseURLSource(raw)
	}
	return SourceFromFile(raw), nil
}

func parseURLSource(raw string) (Source, error) {
	if raw == "" {
		return nil, fmt.Errorf("catalog: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("catalog: invalid URL %q: %w", raw, err)
	}
	return urlSource{raw: raw}, nil
}
