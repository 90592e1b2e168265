package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/goliatone/go-promptcat/pkg/chat"
)

// OutputFormat controls what Render returns.
type OutputFormat string

const (
	// OutputFormatText returns the finalized prompt text.
	OutputFormatText OutputFormat = "text"
	// OutputFormatJSON returns the prompt, bindings, final text, and URL.
	OutputFormatJSON OutputFormat = "json"
)

// Action is what happens to the finalized prompt.
type Action string

const (
	ActionAsk   Action = ""
	ActionCopy  Action = "copy"
	ActionOpen  Action = "open"
	ActionPrint Action = "print"
)

// Theme holds the styles used for terminal output.
type Theme struct {
	Title    lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultTheme returns bold titles and accent-coloured substituted values.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Underline(true),
		Emphasis: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Muted:    lipgloss.NewStyle().Faint(true),
	}
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput sets where the default survey driver prints messages.
func WithOutput(out io.Writer) Option {
	return func(r *Renderer) {
		r.out = out
	}
}

// WithOutputFormat selects what Render returns.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithAction skips the action prompt and always performs action.
func WithAction(action Action) Option {
	return func(r *Renderer) {
		r.action = action
	}
}

// WithExporter sets the clipboard/browser exporter.
func WithExporter(exporter *chat.Exporter) Option {
	return func(r *Renderer) {
		if exporter != nil {
			r.exporter = exporter
		}
	}
}

// WithTheme replaces the terminal styles.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithLogger sets the renderer logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
