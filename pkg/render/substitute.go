package render

import (
	"strings"

	internal "github.com/goliatone/go-promptcat/internal/placeholder"
	"github.com/goliatone/go-promptcat/pkg/placeholder"
)

// Bindings maps a placeholder name to the value a user typed for it during one
// editing session. A nil Bindings means no session is open yet.
type Bindings map[string]string

// Clone returns an independent copy of the bindings.
func (b Bindings) Clone() Bindings {
	if b == nil {
		return nil
	}
	out := make(Bindings, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Emphasizer wraps a substituted value so it stands out from literal text.
type Emphasizer func(value string) string

// Bold is the default preview emphasis.
func Bold(value string) string {
	return "<b>" + value + "</b>"
}

// PreviewOption customises Preview.
type PreviewOption func(*previewConfig)

type previewConfig struct {
	emphasis Emphasizer
}

// WithEmphasis replaces the markup placed around substituted values.
func WithEmphasis(fn Emphasizer) PreviewOption {
	return func(cfg *previewConfig) {
		if fn != nil {
			cfg.emphasis = fn
		}
	}
}

// Preview renders text for on-screen display. Every placeholder resolves to
// the trimmed bound value, else the first declared default for its name, else
// the bare name, and the result is wrapped with the configured emphasis.
// Text without placeholders is returned unchanged.
func Preview(text string, bindings Bindings, options ...PreviewOption) string {
	cfg := previewConfig{emphasis: Bold}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	specs := placeholder.Extract(text)
	if len(specs) == 0 {
		return text
	}
	return substitute(text, specs, bindings, cfg.emphasis)
}

// Final renders text for export: plain resolved values followed by the
// directive sentence.
func Final(text string, bindings Bindings, directives Directives) string {
	specs := placeholder.Extract(text)
	out := text
	if len(specs) > 0 {
		out = substitute(text, specs, bindings, nil)
	}
	return out + directives.Suffix()
}

// Resolve returns the value a placeholder name renders to under the given
// bindings, following the value → default → name fallback chain.
func Resolve(specs []placeholder.Spec, bindings Bindings, name string) string {
	if value := strings.TrimSpace(bindings[name]); value != "" {
		return value
	}
	if spec, ok := placeholder.Lookup(specs, name); ok && spec.Default != "" {
		return spec.Default
	}
	return name
}

func substitute(text string, specs []placeholder.Spec, bindings Bindings, emphasis Emphasizer) string {
	resolved := make(map[string]string, len(specs))
	for _, name := range placeholder.Names(specs) {
		resolved[name] = Resolve(specs, bindings, name)
	}

	return internal.Replace(text, func(spec internal.Spec) string {
		value, ok := resolved[spec.Name]
		if !ok {
			value = spec.Name
		}
		if emphasis != nil {
			return emphasis(value)
		}
		return value
	})
}
