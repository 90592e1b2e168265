// Package vanilla renders a catalog view as a static HTML page: one card per
// prompt with its emphasized preview, a variable form, and a chat link
// carrying the finalized text.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-promptcat/pkg/chat"
	"github.com/goliatone/go-promptcat/pkg/model"
	"github.com/goliatone/go-promptcat/pkg/render"
	rendertemplate "github.com/goliatone/go-promptcat/pkg/render/template"
	gotemplate "github.com/goliatone/go-promptcat/pkg/render/template/gotemplate"
)

const pageTemplate = "page.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	policy           *bluemonday.Policy
	stylesheet       *string
	goTemplate       bool
	goTemplateOpts   []gotemplatepkg.Option
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// page.tmpl and the components it includes.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithGoTemplate renders with a github.com/goliatone/go-template engine over
// the configured template bundle instead of the built-in pongo2 set. Ignored
// when WithTemplateRenderer supplies an engine.
func WithGoTemplate(options ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		cfg.goTemplate = true
		cfg.goTemplateOpts = append(cfg.goTemplateOpts, options...)
	}
}

// WithPolicy replaces the sanitizer applied to previews.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithStylesheet replaces the inline stylesheet. An empty string disables
// it.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = &css
	}
}

type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	policy     *bluemonday.Policy
	stylesheet string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engineOptions := []gotemplate.Option{
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		}
		var err error
		if cfg.goTemplate {
			engineOptions = append(engineOptions, gotemplate.WithGoTemplateOptions(cfg.goTemplateOpts...))
			templates, err = gotemplate.NewGoTemplate(engineOptions...)
		} else {
			templates, err = gotemplate.New(engineOptions...)
		}
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
	}

	policy := cfg.policy
	if policy == nil {
		policy = previewPolicy()
	}
	stylesheet := defaultStylesheet()
	if cfg.stylesheet != nil {
		stylesheet = *cfg.stylesheet
	}

	return &Renderer{templates: templates, policy: policy, stylesheet: stylesheet}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

type pageData struct {
	Title         string     `json:"title"`
	Label         string     `json:"label"`
	Query         string     `json:"query"`
	Total         int        `json:"total"`
	Variant       string     `json:"variant"`
	Platform      string     `json:"platform"`
	Stylesheet    string     `json:"stylesheet"`
	StylesheetURL string     `json:"stylesheetUrl"`
	RootStyle     string     `json:"rootStyle"`
	Cards         []cardData `json:"cards"`
}

type cardData struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	ForDevelopers bool        `json:"forDevelopers"`
	Preview       string      `json:"preview"`
	Final         string      `json:"final"`
	ChatURL       string      `json:"chatUrl"`
	Fields        []fieldData `json:"fields"`
}

type fieldData struct {
	ControlID   string `json:"controlId"`
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
}

// Render writes the page. options.Values pre-fills every card's inputs and
// drives previews and finalized text; options.Theme contributes CSS
// variables, the variant, and an optional stylesheet URL.
func (r *Renderer) Render(ctx context.Context, view model.CatalogView, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	platformName := options.Platform
	if platformName == "" {
		platformName = chat.DefaultPlatform
	}
	platformLabel := platformName
	if p, ok := chat.Lookup(platformName); ok {
		platformLabel = p.Label
	}

	title := strings.TrimSpace(view.Title)
	if title == "" {
		title = "Prompts"
	}
	data := pageData{
		Title:      title,
		Label:      view.Label,
		Query:      view.Query,
		Total:      view.Total,
		Variant:    "light",
		Platform:   platformLabel,
		Stylesheet: r.stylesheet,
		Cards:      make([]cardData, 0, len(view.Forms)),
	}
	if cfg := options.Theme; cfg != nil {
		if cfg.Variant != "" {
			data.Variant = cfg.Variant
		}
		data.RootStyle = rootStyle(cfg.CSSVars)
		if cfg.AssetURL != nil {
			data.StylesheetURL = cfg.AssetURL(StylesheetAssetKey)
		}
	}

	for _, form := range view.Forms {
		card, err := r.card(form, options, platformName)
		if err != nil {
			return nil, err
		}
		data.Cards = append(data.Cards, card)
	}

	out, err := r.templates.RenderTemplate(pageTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) card(form model.FormModel, options render.RenderOptions, platform string) (cardData, error) {
	final := render.Final(form.Prompt, options.Values, options.Directives)
	link, err := chat.URL(platform, "", final)
	if err != nil {
		return cardData{}, fmt.Errorf("vanilla renderer: %s: %w", form.ID, err)
	}

	card := cardData{
		ID:            form.ID,
		Title:         form.Title,
		ForDevelopers: form.ForDevelopers,
		Preview:       previewHTML(r.policy, form.Prompt, options.Values),
		Final:         final,
		ChatURL:       link,
		Fields:        make([]fieldData, 0, len(form.Fields)),
	}
	for _, field := range form.Fields {
		card.Fields = append(card.Fields, fieldData{
			ControlID:   controlID(form.ID, field.Name),
			Name:        field.Name,
			Label:       field.Label,
			Placeholder: field.Placeholder,
			Value:       strings.TrimSpace(options.Values[field.Name]),
		})
	}
	return card, nil
}
