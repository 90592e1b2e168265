package gotemplate

import (
	"fmt"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-promptcat/pkg/render/template"
)

var _ template.TemplateRenderer = (*gotemplatepkg.Engine)(nil)

// NewGoTemplate builds a go-template engine from the same options New
// accepts. Filters become go-template template funcs; WithGoTemplateOptions
// are applied last.
func NewGoTemplate(options ...Option) (*gotemplatepkg.Engine, error) {
	cfg, err := newConfig(options)
	if err != nil {
		return nil, err
	}

	opts := []gotemplatepkg.Option{gotemplatepkg.WithExtension(cfg.extension)}
	if cfg.baseDir != "" {
		opts = append(opts, gotemplatepkg.WithBaseDir(cfg.baseDir))
	}
	if cfg.templates != nil {
		opts = append(opts, gotemplatepkg.WithFS(cfg.templates))
	}
	if len(cfg.globalData) > 0 {
		opts = append(opts, gotemplatepkg.WithGlobalData(cfg.globalData))
	}
	if len(cfg.filters) > 0 {
		funcs := make(map[string]any, len(cfg.filters))
		for name, fn := range cfg.filters {
			if name == "" || fn == nil {
				continue
			}
			funcs[name] = adaptFilter(fn)
		}
		opts = append(opts, gotemplatepkg.WithTemplateFunc(funcs))
	}
	opts = append(opts, cfg.goTemplate...)

	registerDefaultFilters()
	engine, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: go-template engine: %w", err)
	}
	return engine, nil
}
