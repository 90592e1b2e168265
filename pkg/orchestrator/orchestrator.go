package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-promptcat/internal/catalog/loader"
	internalParser "github.com/goliatone/go-promptcat/internal/catalog/parser"
	"github.com/goliatone/go-promptcat/pkg/catalog"
	"github.com/goliatone/go-promptcat/pkg/model"
	"github.com/goliatone/go-promptcat/pkg/render"
	"github.com/goliatone/go-promptcat/pkg/renderers/vanilla"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom catalog loader.
func WithLoader(loader catalog.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom catalog parser.
func WithParser(parser catalog.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom form model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDecorators registers decorators that run against every form model
// before rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the full pipeline from catalog document to
// rendered output. It applies sensible defaults (file/HTTP loader, format
// sniffing parser, vanilla renderer, built-in theme) while remaining open to
// dependency injection.
type Orchestrator struct {
	loader          catalog.Loader
	parser          catalog.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	decorators      []model.Decorator
	themes          *themeConfig
	themeName       string
	themeVariant    string
	logger          *zap.Logger
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes which catalog to load, how to narrow it, and how to
// render the result.
type Request struct {
	// Source identifies where the catalog lives. Optional when Document is
	// supplied.
	Source catalog.Source

	// Document bypasses the loader when the caller already holds the payload.
	Document *catalog.Document

	// Audience filters developer-only prompts. The zero value shows everyone.
	Audience catalog.Audience

	// Query narrows the catalog by act or prompt text.
	Query string

	// Fuzzy switches Query from substring matching to fuzzy ranking on acts.
	Fuzzy bool

	// Act selects a single prompt by title. Takes precedence over Query.
	Act string

	// Title labels the rendered page.
	Title string

	// Renderer names the renderer to use. Empty falls back to the default.
	Renderer string

	// RenderOptions carries bindings, directives, and platform.
	RenderOptions render.RenderOptions

	// ThemeName and ThemeVariant select a registered theme. Empty values use
	// the configured defaults.
	ThemeName    string
	ThemeVariant string

	// Decorators run after the orchestrator's own decorators for this
	// request only.
	Decorators []model.Decorator
}

// Generate executes the full pipeline and returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	view, err := o.View(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	output, err := renderer.Render(ctx, view, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	o.logger.Debug("rendered catalog",
		zap.String("renderer", renderer.Name()),
		zap.Int("forms", len(view.Forms)),
		zap.Int("bytes", len(output)),
	)
	return output, nil
}

// View runs the pipeline up to the renderer and returns the catalog view.
func (o *Orchestrator) View(ctx context.Context, req Request) (model.CatalogView, error) {
	if ctx == nil {
		return model.CatalogView{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.CatalogView{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.CatalogView{}, err
	}

	records, err := o.Records(ctx, req)
	if err != nil {
		return model.CatalogView{}, err
	}

	audience := req.Audience
	if audience == "" {
		audience = catalog.AudienceEveryone
	}
	visible := catalog.New(records).FilterAudience(audience)
	total := visible.Len()

	var selected []catalog.Record
	switch {
	case req.Act != "":
		record, err := visible.Find(req.Act)
		if err != nil {
			return model.CatalogView{}, fmt.Errorf("orchestrator: %w", err)
		}
		selected = []catalog.Record{record}
	case req.Fuzzy:
		selected = visible.FuzzySearch(req.Query).Records()
	default:
		selected = visible.Search(req.Query).Records()
	}

	forms, err := o.builder.BuildAll(selected)
	if err != nil {
		return model.CatalogView{}, fmt.Errorf("orchestrator: build form models: %w", err)
	}
	for i := range forms {
		if err := applyDecorators(&forms[i], o.decorators, req.Decorators); err != nil {
			return model.CatalogView{}, err
		}
	}

	o.logger.Debug("catalog view",
		zap.String("audience", string(audience)),
		zap.Int("total", total),
		zap.Int("shown", len(forms)),
	)

	return model.CatalogView{
		Title:    req.Title,
		Label:    catalog.CountLabel(len(forms), total),
		Query:    req.Query,
		Audience: string(audience),
		Total:    total,
		Forms:    forms,
	}, nil
}

// Records loads and parses the catalog without filtering.
func (o *Orchestrator) Records(ctx context.Context, req Request) ([]catalog.Record, error) {
	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	records, err := o.parser.Records(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse catalog: %w", err)
	}
	return records, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (catalog.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return catalog.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return catalog.Document{}, fmt.Errorf("orchestrator: load catalog: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func applyDecorators(form *model.FormModel, chains ...[]model.Decorator) error {
	for _, chain := range chains {
		for _, decorator := range chain {
			if decorator == nil {
				continue
			}
			if err := decorator.Decorate(form); err != nil {
				return fmt.Errorf("orchestrator: decorate %s: %w", form.ID, err)
			}
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(catalog.NewLoaderOptions(), o.logger)
	}
	if o.parser == nil {
		o.parser = internalParser.New(catalog.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = model.NewBuilder(model.WithPreviewer(func(text string) string {
			return render.Preview(text, nil)
		}))
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.themes == nil {
		themes, err := newThemeConfig(DefaultThemeManifest(), DefaultThemeName, DefaultThemeVariant)
		if err != nil {
			o.initialiseErr = err
		} else {
			o.themes = themes
		}
	}

	o.defaultsApplied = true
}
