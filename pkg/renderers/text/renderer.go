// Package text renders finalized prompts as plain text, one block per form.
package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-promptcat/pkg/chat"
	"github.com/goliatone/go-promptcat/pkg/model"
	"github.com/goliatone/go-promptcat/pkg/render"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithLinks appends the chat-service URL under each prompt.
func WithLinks(enabled bool) Option {
	return func(r *Renderer) {
		r.links = enabled
	}
}

// Renderer writes finalized prompt text.
type Renderer struct {
	links bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the text renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render finalizes every form with options.Values and options.Directives. A
// single form is written bare; several forms are headed by their titles.
func (r *Renderer) Render(ctx context.Context, view model.CatalogView, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	single := len(view.Forms) == 1
	if !single {
		fmt.Fprintf(&b, "%s\n\n", view.Label)
	}

	for i, form := range view.Forms {
		final := render.Final(form.Prompt, options.Values, options.Directives)
		if single {
			b.WriteString(final)
			b.WriteString("\n")
		} else {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "## %s\n%s\n", form.Title, final)
		}

		if r.links && options.Platform != "" {
			link, err := chat.URL(options.Platform, "", final)
			if err != nil {
				return nil, fmt.Errorf("text renderer: %w", err)
			}
			fmt.Fprintf(&b, "%s\n", link)
		}
	}
	return []byte(b.String()), nil
}
