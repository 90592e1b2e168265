package promptcat

import (
	"context"
	"fmt"

	"github.com/goliatone/go-promptcat/pkg/catalog"
	"github.com/goliatone/go-promptcat/pkg/orchestrator"
	"github.com/goliatone/go-promptcat/pkg/placeholder"
	"github.com/goliatone/go-promptcat/pkg/render"
	"github.com/goliatone/go-promptcat/pkg/renderers/text"
	"github.com/goliatone/go-promptcat/pkg/renderers/tui"
	"github.com/goliatone/go-promptcat/pkg/renderers/vanilla"
)

// RenderOptions describes per-request bindings, directives, and platform.
type RenderOptions = render.RenderOptions

// Bindings maps placeholder names to user-entered values.
type Bindings = render.Bindings

// Directives is the language/tone/audience suffix of a finalized prompt.
type Directives = render.Directives

// Spec is one distinct placeholder occurrence.
type Spec = placeholder.Spec

// Extract returns the distinct placeholders of text in first-appearance order.
func Extract(text string) []Spec {
	return placeholder.Extract(text)
}

// Preview substitutes placeholders with emphasized values for display.
func Preview(text string, bindings Bindings) string {
	return render.Preview(text, bindings)
}

// Final substitutes placeholders with plain values and appends directives.
func Final(text string, bindings Bindings, directives Directives) string {
	return render.Final(text, bindings, directives)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewRegistry returns a registry holding the built-in renderers, reachable
// by name or by the aliases html, plain, and terminal.
func NewRegistry(tuiOptions ...tui.Option) (*render.Registry, error) {
	registry := render.NewRegistry()

	html, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("promptcat: vanilla renderer: %w", err)
	}
	terminal, err := tui.New(tuiOptions...)
	if err != nil {
		return nil, fmt.Errorf("promptcat: tui renderer: %w", err)
	}
	for _, renderer := range []render.Renderer{html, text.New(), terminal} {
		if err := registry.Register(renderer); err != nil {
			return nil, err
		}
	}
	for alias, name := range map[string]string{"html": "vanilla", "plain": "text", "terminal": "tui"} {
		if err := registry.Alias(alias, name); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// GenerateHTML loads the catalog at source, narrows it by query, and renders
// it with the vanilla renderer.
func GenerateHTML(ctx context.Context, source catalog.Source, query string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Query:    query,
		Renderer: "vanilla",
	})
}

// GenerateHTMLFromDocument renders a pre-loaded catalog document, bypassing
// the loader stage.
func GenerateHTMLFromDocument(ctx context.Context, doc catalog.Document, query string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Query:    query,
		Renderer: "vanilla",
	})
}
