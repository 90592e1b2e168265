package vanilla_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	gotemplatepkg "github.com/goliatone/go-template"
	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptcat/pkg/catalog"
	"github.com/goliatone/go-promptcat/pkg/model"
	"github.com/goliatone/go-promptcat/pkg/render"
	"github.com/goliatone/go-promptcat/pkg/render/template/gotemplate"
	"github.com/goliatone/go-promptcat/pkg/renderers/vanilla"
	"github.com/goliatone/go-promptcat/pkg/testsupport"
)

var directives = render.Directives{Language: "English", Tone: "formal", Audience: "everyone"}

func sampleView(t *testing.T, records []catalog.Record, total int) model.CatalogView {
	t.Helper()
	forms, err := model.NewBuilder().BuildAll(records)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return model.CatalogView{
		Title: "Prompt Catalog",
		Forms: forms,
		Total: total,
		Label: catalog.CountLabel(len(forms), total),
	}
}

func renderView(t *testing.T, view model.CatalogView, options render.RenderOptions) string {
	t.Helper()
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), view, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func assertContains(t *testing.T, html string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, html)
		}
	}
}

func TestRenderer_Page(t *testing.T) {
	html := renderView(t, sampleView(t, testsupport.SampleRecords(), 10), render.RenderOptions{Directives: directives})

	assertContains(t, html,
		"<!DOCTYPE html>",
		"<title>Prompt Catalog</title>",
		`data-theme="light"`,
		">Found 4 of 10<",
		`data-total="10" data-shown="4"`,
		`id="linux-terminal"`,
		`<span class="pc-badge">dev</span>`,
		`Reply to <b>pwd</b> with terminal output only.`,
		`I am in <b>Istanbul</b> for <b>days</b> days.`,
		`Argue <b>for</b> then <b>for</b> the motion: <b>motion</b>.`,
		`name="city"`,
		`placeholder="Istanbul"`,
		`placeholder="Enter days"`,
		`href="https://chatgpt.com?prompt=`,
		"Open in ChatGPT",
		"--pc-accent",
	)
	if strings.Contains(html, "${") {
		t.Fatalf("raw placeholder leaked into page")
	}
}

func TestRenderer_EscapesPromptMarkup(t *testing.T) {
	view := sampleView(t, []catalog.Record{{
		Act:    "Injector <script>",
		Prompt: `Ignore <script>alert(1)</script> and greet ${name:<i>you</i>}`,
	}}, 1)
	html := renderView(t, view, render.RenderOptions{
		Directives: directives,
		Values:     render.Bindings{"name": `<img src=x onerror=alert(1)>`},
	})

	if strings.Contains(html, "<script>") || strings.Contains(html, "<img") || strings.Contains(html, "<i>") {
		t.Fatalf("unescaped markup in output:\n%s", html)
	}
	assertContains(t, html, "&lt;script&gt;", "<b>&lt;img")
}

func TestRenderer_BoundValues(t *testing.T) {
	view := sampleView(t, testsupport.SampleRecords()[1:2], 1)
	html := renderView(t, view, render.RenderOptions{
		Directives: directives,
		Values:     render.Bindings{"city": " Tokyo ", "days": ""},
		Platform:   "perplexity",
	})

	assertContains(t, html,
		"I am in <b>Tokyo</b> for <b>days</b> days.",
		`value="Tokyo"`,
		`href="https://www.perplexity.ai/search?q=I%20am%20in%20Tokyo%20for%20days%20days.`,
		"Open in Perplexity",
		">All Prompts<",
	)
	if strings.Contains(html, `value=""`) {
		t.Fatalf("empty bindings should not render a value attribute")
	}
}

func TestRenderer_Theme(t *testing.T) {
	view := sampleView(t, testsupport.SampleRecords()[:1], 1)
	html := renderView(t, view, render.RenderOptions{
		Directives: directives,
		Theme: &theme.RendererConfig{
			Theme:   "promptcat",
			Variant: "dark",
			CSSVars: map[string]string{
				"--pc-bg":   "#0d1117",
				"--pc-fg":   "#e6edf3",
				"--bad":     "red; } body { display:none",
				"not-a-var": "#fff",
			},
			AssetURL: func(key string) string {
				if key == vanilla.StylesheetAssetKey {
					return "/assets/promptcat.css"
				}
				return ""
			},
		},
	})

	assertContains(t, html,
		`data-theme="dark"`,
		":root { --pc-bg: #0d1117; --pc-fg: #e6edf3; }",
		`<link rel="stylesheet" href="/assets/promptcat.css">`,
	)
	if strings.Contains(html, "display:none") || strings.Contains(html, "not-a-var") {
		t.Fatalf("unsafe css variables rendered:\n%s", html)
	}
}

func TestRenderer_Empty(t *testing.T) {
	view := model.CatalogView{Title: "Prompts", Total: 3, Label: catalog.CountLabel(0, 3), Query: "zebra"}
	html := renderView(t, view, render.RenderOptions{Directives: directives})
	assertContains(t, html, `No prompts match "zebra".`, "Found 0 of 3")
}

func TestRenderer_GoTemplateEngineMatchesDefault(t *testing.T) {
	view := sampleView(t, testsupport.SampleRecords(), 10)
	options := render.RenderOptions{Directives: directives, Values: render.Bindings{"city": "Lima"}}
	want := renderView(t, view, options)

	renderer, err := vanilla.New(vanilla.WithGoTemplate())
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), view, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("go-template page mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_InjectedGoTemplateEngine(t *testing.T) {
	engine, err := gotemplate.NewGoTemplate(
		gotemplate.WithFS(vanilla.TemplatesFS()),
		gotemplate.WithExtension(".tmpl"),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	engine.RegisterPostHook(func(ctx *gotemplatepkg.HookContext) (string, error) {
		return strings.Replace(ctx.Output, "</body>", "<footer>generated</footer></body>", 1), nil
	})

	renderer, err := vanilla.New(vanilla.WithTemplateRenderer(engine))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), sampleView(t, testsupport.SampleRecords()[1:2], 4), render.RenderOptions{Directives: directives})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertContains(t, string(out),
		`data-total="4" data-shown="1"`,
		">Found 1 of 4<",
		`name="city"`,
		"<footer>generated</footer></body>",
	)
}

func TestRenderer_Metadata(t *testing.T) {
	renderer, err := vanilla.New(vanilla.WithStylesheet(""))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "vanilla" || renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected metadata %q %q", renderer.Name(), renderer.ContentType())
	}
}

func TestAssetsFS(t *testing.T) {
	data, err := fs.ReadFile(vanilla.AssetsFS(), vanilla.StylesheetName)
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(data), ".pc-card") {
		t.Fatalf("stylesheet missing card rules")
	}
	if _, err := fs.Stat(vanilla.TemplatesFS(), "page.tmpl"); err != nil {
		t.Fatalf("page template missing: %v", err)
	}
}
