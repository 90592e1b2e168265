package placeholder

import (
	"regexp"
	"strings"
)

// Spec is a single `${name}` or `${name:default}` declaration found in text.
type Spec struct {
	Name    string `json:"name"`
	Default string `json:"default"`
}

// pattern captures the name (anything but ':' or '}') and an optional default
// (anything but '}').
var pattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?\}`)

// Scan returns every placeholder in text, in order, without deduplication.
func Scan(text string) []Spec {
	if text == "" {
		return nil
	}
	matches := pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]Spec, 0, len(matches))
	for _, m := range matches {
		out = append(out, specFromMatch(text, m))
	}
	return out
}

// Unique collapses specs with identical (name, default) pairs, keeping the
// position of the first occurrence.
func Unique(specs []Spec) []Spec {
	if len(specs) == 0 {
		return nil
	}
	seen := make(map[Spec]struct{}, len(specs))
	out := make([]Spec, 0, len(specs))
	for _, spec := range specs {
		if _, ok := seen[spec]; ok {
			continue
		}
		seen[spec] = struct{}{}
		out = append(out, spec)
	}
	return out
}

// Replace rewrites every placeholder in text with the value returned by fn.
// The returned value is inserted literally and is not scanned again.
func Replace(text string, fn func(Spec) string) string {
	if text == "" || fn == nil {
		return text
	}
	matches := pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		b.WriteString(fn(specFromMatch(text, m)))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func specFromMatch(text string, m []int) Spec {
	spec := Spec{Name: strings.TrimSpace(text[m[2]:m[3]])}
	if m[4] >= 0 {
		spec.Default = strings.TrimSpace(text[m[4]:m[5]])
	}
	return spec
}
