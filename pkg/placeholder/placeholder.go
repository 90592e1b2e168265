package placeholder

import internal "github.com/goliatone/go-promptcat/internal/placeholder"

// Spec re-exports the internal placeholder declaration.
type Spec = internal.Spec

// Extract returns the placeholders declared in text, deduplicated on the
// (name, default) pair and ordered by first occurrence. Text without
// placeholders yields nil.
func Extract(text string) []Spec {
	return internal.Unique(internal.Scan(text))
}

// Names returns the distinct placeholder names in first-occurrence order.
func Names(specs []Spec) []string {
	if len(specs) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(specs))
	out := make([]string, 0, len(specs))
	for _, spec := range specs {
		if _, ok := seen[spec.Name]; ok {
			continue
		}
		seen[spec.Name] = struct{}{}
		out = append(out, spec.Name)
	}
	return out
}

// Lookup returns the first spec declared for name. When a name carries several
// defaults the first one wins, matching how substitution resolves it.
func Lookup(specs []Spec, name string) (Spec, bool) {
	for _, spec := range specs {
		if spec.Name == name {
			return spec, true
		}
	}
	return Spec{}, false
}
