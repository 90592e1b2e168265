package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptcat/pkg/model"
	"github.com/goliatone/go-promptcat/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, model.CatalogView, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("Vanilla"))
	registry.MustRegister(namedRenderer("text"))

	if err := registry.Register(namedRenderer(" vanilla ")); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected empty name to fail")
	}

	if err := registry.Alias("HTML", "vanilla"); err != nil {
		t.Fatalf("Alias: %v", err)
	}
	got, err := registry.Get("html")
	if err != nil {
		t.Fatalf("Get alias: %v", err)
	}
	if got.Name() != "Vanilla" {
		t.Fatalf("alias resolved to %q", got.Name())
	}
	if !registry.Has("VANILLA") || !registry.Has("html") || registry.Has("pdf") {
		t.Fatalf("Has reports wrong membership")
	}
	if diff := cmp.Diff([]string{"text", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryAliasErrors(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("text"))
	registry.MustRegister(namedRenderer("tui"))

	if err := registry.Alias("plain", "pdf"); err == nil {
		t.Fatalf("expected alias to unknown renderer to fail")
	}
	if err := registry.Alias("tui", "text"); err == nil {
		t.Fatalf("expected alias shadowing a renderer to fail")
	}
	if err := registry.Alias("plain", "text"); err != nil {
		t.Fatalf("Alias: %v", err)
	}
	if err := registry.Register(namedRenderer("plain")); err == nil {
		t.Fatalf("expected renderer shadowing an alias to fail")
	}
	_, err := registry.Get("pdf")
	if err == nil || !strings.Contains(err.Error(), "available: text, tui") {
		t.Fatalf("unexpected error %v", err)
	}
}
