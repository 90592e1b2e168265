package orchestrator

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Built-in theme identifiers.
const (
	DefaultThemeName    = "promptcat"
	DefaultThemeVariant = "light"
)

// DefaultThemeManifest describes the built-in light and dark palettes. Token
// names become CSS custom properties prefixed with "--".
func DefaultThemeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"pc-bg":     "#ffffff",
			"pc-fg":     "#1f2328",
			"pc-muted":  "#59636e",
			"pc-card":   "#f6f8fa",
			"pc-border": "#d1d9e0",
			"pc-accent": "#0969da",
		},
		Variants: map[string]theme.Variant{
			"light": {},
			"dark": {
				Tokens: map[string]string{
					"pc-bg":     "#0d1117",
					"pc-fg":     "#e6edf3",
					"pc-muted":  "#9198a1",
					"pc-card":   "#151b23",
					"pc-border": "#3d444d",
					"pc-accent": "#4493f8",
				},
			},
		},
	}
}

// WithThemeSelector resolves themes through selector instead of the built-in
// manifest.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		if selector == nil {
			return
		}
		o.themes = &themeConfig{selector: selector, defaultTheme: DefaultThemeName}
	}
}

// WithThemeManifests registers manifests with a built-in selector. The first
// manifest becomes the default theme.
func WithThemeManifests(defaultVariant string, manifests ...*theme.Manifest) Option {
	return func(o *Orchestrator) {
		if len(manifests) == 0 {
			return
		}
		cfg, err := newThemeConfig(manifests[0], manifests[0].Name, defaultVariant, manifests[1:]...)
		if err != nil {
			o.initialiseErr = err
			return
		}
		o.themes = cfg
	}
}

// WithThemeDefaults overrides the theme and variant used when a request
// names none.
func WithThemeDefaults(name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeName = strings.TrimSpace(name)
		o.themeVariant = strings.TrimSpace(variant)
	}
}

type themeConfig struct {
	selector       theme.ThemeSelector
	defaultTheme   string
	defaultVariant string
}

func newThemeConfig(primary *theme.Manifest, name, variant string, extra ...*theme.Manifest) (*themeConfig, error) {
	selector, err := newManifestSelector(append([]*theme.Manifest{primary}, extra...)...)
	if err != nil {
		return nil, err
	}
	return &themeConfig{selector: selector, defaultTheme: name, defaultVariant: variant}, nil
}

// manifestSelector resolves a theme name and variant against a fixed set of
// manifests validated through a go-theme registry.
type manifestSelector struct {
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*manifestSelector)(nil)

func newManifestSelector(manifests ...*theme.Manifest) (*manifestSelector, error) {
	registry := theme.NewRegistry()
	selector := &manifestSelector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("orchestrator: register theme %q: %w", manifest.Name, err)
		}
		selector.manifests[manifest.Name] = manifest
	}
	if len(selector.manifests) == 0 {
		return nil, errors.New("orchestrator: no theme manifests")
	}
	return selector, nil
}

func (s *manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("orchestrator: theme %q not registered", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("orchestrator: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// resolveTheme turns a selection into the renderer configuration: base tokens
// and templates overlaid with the variant's, CSS variables derived from the
// tokens, and an asset resolver over the merged asset files.
func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if o.themes == nil || o.themes.selector == nil {
		return nil, nil
	}
	name = firstNonEmpty(name, o.themeName, o.themes.defaultTheme)
	variant = firstNonEmpty(variant, o.themeVariant, o.themes.defaultVariant)

	selection, err := o.themes.selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	if selection == nil {
		return nil, nil
	}

	cfg := &theme.RendererConfig{
		Theme:    firstNonEmpty(selection.Theme, name),
		Variant:  firstNonEmpty(selection.Variant, variant),
		Partials: map[string]string{},
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}

	prefix := ""
	files := map[string]string{}
	if manifest := selection.Manifest; manifest != nil {
		mergeInto(cfg.Tokens, manifest.Tokens)
		mergeInto(cfg.Partials, manifest.Templates)
		mergeInto(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix
		if v, ok := manifest.Variants[cfg.Variant]; ok {
			mergeInto(cfg.Tokens, v.Tokens)
			mergeInto(cfg.Partials, v.Templates)
			mergeInto(files, v.Assets.Files)
			if v.Assets.Prefix != "" {
				prefix = v.Assets.Prefix
			}
		}
	}
	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+key] = value
	}
	cfg.AssetURL = assetResolver(prefix, files)
	return cfg, nil
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
}

func mergeInto(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
