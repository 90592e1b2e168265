package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-promptcat/pkg/chat"
	"github.com/goliatone/go-promptcat/pkg/model"
	"github.com/goliatone/go-promptcat/pkg/placeholder"
	"github.com/goliatone/go-promptcat/pkg/render"
	"github.com/goliatone/go-promptcat/pkg/session"
)

// Renderer implements render.Renderer as an interactive terminal session:
// pick a prompt, fill its variables, review the preview, then copy, open, or
// print the finalized text.
type Renderer struct {
	driver       PromptDriver
	out          io.Writer
	outputFormat OutputFormat
	action       Action
	exporter     *chat.Exporter
	theme        Theme
	logger       *zap.Logger
}

// New constructs a TUI renderer with defaults (survey driver, text output).
func New(options ...Option) (render.Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatText,
		theme:        DefaultTheme(),
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	if r.exporter == nil {
		r.exporter = chat.NewExporter(chat.WithLogger(r.logger))
	}
	switch r.action {
	case ActionAsk, ActionCopy, ActionOpen, ActionPrint:
	default:
		return nil, fmt.Errorf("tui: unknown action %q", r.action)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the MIME type of the returned payload.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatJSON {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

// Result is the JSON payload returned with OutputFormatJSON.
type Result struct {
	ID       string            `json:"id"`
	Act      string            `json:"act"`
	Bindings map[string]string `json:"bindings,omitempty"`
	Final    string            `json:"final"`
	Platform string            `json:"platform"`
	URL      string            `json:"url,omitempty"`
	Action   Action            `json:"action"`
}

// Render runs the interactive session. options.Values pre-fills inputs,
// options.Directives is appended to the finalized text, and options.Platform
// picks the chat service for the open action.
func (r *Renderer) Render(ctx context.Context, view model.CatalogView, options render.RenderOptions) ([]byte, error) {
	if len(view.Forms) == 0 {
		return nil, ErrNoPrompts
	}

	form, err := r.pick(ctx, view)
	if err != nil {
		return nil, err
	}

	sess := session.Open(form)
	defer sess.Close()
	r.logger.Debug("session opened", zap.String("session", sess.ID), zap.String("prompt", form.ID))

	for _, field := range form.Fields {
		value, err := r.driver.Input(ctx, InputConfig{
			Message:     field.Label,
			Default:     initialValue(field, options.Values),
			Help:        field.Placeholder,
			Suggestions: suggestions(form.Prompt, field.Name),
		})
		if err != nil {
			return nil, fmt.Errorf("tui: field %s: %w", field.Name, err)
		}
		sess.Set(field.Name, value)
	}

	preview := sess.Preview(render.WithEmphasis(func(v string) string {
		return r.theme.Emphasis.Render(v)
	}))
	if err := r.driver.Info(ctx, r.theme.Title.Render(form.Title)+"\n\n"+preview); err != nil {
		return nil, err
	}

	platform := options.Platform
	if platform == "" {
		platform = chat.DefaultPlatform
	}
	final := sess.Final(options.Directives)

	action, err := r.chooseAction(ctx, platform)
	if err != nil {
		return nil, err
	}

	result := Result{
		ID:       form.ID,
		Act:      form.Title,
		Bindings: sess.Bindings(),
		Final:    final,
		Platform: platform,
		Action:   action,
	}
	if err := r.perform(ctx, action, &result); err != nil {
		return nil, err
	}

	if r.outputFormat == OutputFormatJSON {
		return json.MarshalIndent(result, "", "  ")
	}
	return []byte(final + "\n"), nil
}

func (r *Renderer) pick(ctx context.Context, view model.CatalogView) (model.FormModel, error) {
	if len(view.Forms) == 1 {
		return view.Forms[0], nil
	}
	titles := make([]string, len(view.Forms))
	excerpts := make([]string, len(view.Forms))
	for i, form := range view.Forms {
		titles[i] = form.Title
		excerpts[i] = excerpt(form.Prompt, excerptWidth)
		if form.ForDevelopers {
			titles[i] += " " + r.theme.Muted.Render("[dev]")
		}
	}
	message := "Pick a prompt"
	if view.Label != "" {
		message = fmt.Sprintf("Pick a prompt (%s)", view.Label)
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      titles,
		Descriptions: excerpts,
		PageSize:     15,
	})
	if err != nil {
		return model.FormModel{}, err
	}
	if idx < 0 || idx >= len(view.Forms) {
		return model.FormModel{}, fmt.Errorf("tui: selection %d out of range", idx)
	}
	return view.Forms[idx], nil
}

func (r *Renderer) chooseAction(ctx context.Context, platform string) (Action, error) {
	if r.action != ActionAsk {
		return r.action, nil
	}
	label := platform
	if p, ok := chat.Lookup(platform); ok {
		label = p.Label
	}
	actions := []Action{ActionCopy, ActionOpen, ActionPrint}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message: "What next?",
		Options: []string{"Copy to clipboard", "Open in " + label, "Print"},
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(actions) {
		return "", fmt.Errorf("tui: action %d out of range", idx)
	}
	return actions[idx], nil
}

func (r *Renderer) perform(ctx context.Context, action Action, result *Result) error {
	switch action {
	case ActionCopy:
		if err := r.exporter.Copy(ctx, result.Final); err != nil {
			if errors.Is(err, chat.ErrUnsupportedClipboard) {
				return r.driver.Info(ctx, r.theme.Muted.Render("clipboard unavailable, printing instead"))
			}
			return err
		}
		return r.driver.Info(ctx, "Copied to clipboard.")
	case ActionOpen:
		link, err := r.exporter.Open(ctx, result.Platform, result.Final)
		result.URL = link
		if err != nil {
			if link == "" {
				return err
			}
			return r.driver.Info(ctx, "Could not open a browser. Visit:\n"+link)
		}
		return r.driver.Info(ctx, "Opened "+link)
	default:
		link, err := r.exporter.URL(result.Platform, result.Final)
		if err == nil {
			result.URL = link
		}
		return nil
	}
}

const excerptWidth = 48

// suggestions lists every distinct default declared for name, in order.
func suggestions(prompt, name string) []string {
	var out []string
	for _, spec := range placeholder.Extract(prompt) {
		if spec.Name == name && spec.Default != "" && !slices.Contains(out, spec.Default) {
			out = append(out, spec.Default)
		}
	}
	return out
}

func excerpt(text string, width int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return strings.TrimSpace(string(runes[:width])) + "..."
}

func initialValue(field model.Field, values render.Bindings) string {
	if v := strings.TrimSpace(values[field.Name]); v != "" {
		return v
	}
	return field.Default
}
