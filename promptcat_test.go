package promptcat_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	promptcat "github.com/goliatone/go-promptcat"
	"github.com/goliatone/go-promptcat/pkg/catalog"
	"github.com/goliatone/go-promptcat/pkg/orchestrator"
)

func TestSampleDocumentParses(t *testing.T) {
	ctx := context.Background()
	records, err := promptcat.NewParser().Records(ctx, promptcat.SampleDocument())
	if err != nil {
		t.Fatalf("parse samples: %v", err)
	}
	if len(records) != 12 {
		t.Fatalf("expected 12 sample prompts, got %d", len(records))
	}
	devs := catalog.New(records).FilterAudience(catalog.AudienceDevelopers)
	if devs.Len() != 5 {
		t.Fatalf("expected 5 developer prompts, got %d", devs.Len())
	}

	js, err := catalog.New(records).Find("JavaScript Console")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	specs := promptcat.Extract(js.Prompt)
	if len(specs) != 1 || specs[0].Default != `console.log("Hello World");` {
		t.Fatalf("unexpected specs %+v", specs)
	}
}

func TestSamplesLoadThroughFS(t *testing.T) {
	loader := promptcat.NewLoader(catalog.WithFileSystem(promptcat.SamplesFS()))
	doc, err := loader.Load(context.Background(), catalog.SourceFromFS(promptcat.SampleLocation))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(promptcat.SampleDocument().Raw(), doc.Raw()); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRegistry(t *testing.T) {
	registry, err := promptcat.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if diff := cmp.Diff([]string{"text", "tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}
	for alias, want := range map[string]string{"html": "vanilla", "plain": "text", "terminal": "tui"} {
		renderer, err := registry.Get(alias)
		if err != nil {
			t.Fatalf("Get(%q): %v", alias, err)
		}
		if renderer.Name() != want {
			t.Fatalf("Get(%q) = %q, want %q", alias, renderer.Name(), want)
		}
	}
}

func TestGenerateHTMLFromDocument(t *testing.T) {
	out, err := promptcat.GenerateHTMLFromDocument(context.Background(), promptcat.SampleDocument(), "travel")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "Travel Guide") || !strings.Contains(html, "Found 1 of 12") {
		t.Fatalf("unexpected output:\n%s", html)
	}
	if strings.Contains(html, "Linux Terminal") {
		t.Fatalf("query should have excluded other prompts")
	}
}

func TestFacadeSubstitution(t *testing.T) {
	directives := promptcat.Directives{Language: "English", Tone: "formal", Audience: "everyone"}
	got := promptcat.Final("Say ${word}", promptcat.Bindings{"word": "hi"}, directives)
	if want := "Say hi Reply in English using formal tone for everyone."; got != want {
		t.Fatalf("Final() = %q, want %q", got, want)
	}
	if got := promptcat.Preview("Visit ${city:Paris}", nil); got != "Visit <b>Paris</b>" {
		t.Fatalf("Preview() = %q", got)
	}

	orch := promptcat.NewOrchestrator()
	view, err := orch.View(context.Background(), orchestrator.Request{Document: ptr(promptcat.SampleDocument()), Act: "chef"})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(view.Forms) != 1 || len(view.Forms[0].Fields) != 3 {
		t.Fatalf("unexpected chef view %+v", view.Forms)
	}
}

func ptr[T any](v T) *T { return &v }
