package render_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-promptcat/pkg/placeholder"
	"github.com/goliatone/go-promptcat/pkg/render"
)

var everyone = render.Directives{Language: "English", Tone: "formal", Audience: "everyone"}

func TestPreview(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		bindings render.Bindings
		want     string
	}{
		{
			name: "unbound uses default",
			text: "Visit ${city:Paris}",
			want: "Visit <b>Paris</b>",
		},
		{
			name: "unbound without default emphasizes name",
			text: "Hi ${name}",
			want: "Hi <b>name</b>",
		},
		{
			name:     "empty binding falls back to default",
			text:     "Visit ${city:Paris}",
			bindings: render.Bindings{"city": ""},
			want:     "Visit <b>Paris</b>",
		},
		{
			name:     "whitespace binding falls back to default",
			text:     "Visit ${city:Paris}",
			bindings: render.Bindings{"city": "   "},
			want:     "Visit <b>Paris</b>",
		},
		{
			name:     "bound value wins",
			text:     "Visit ${city:Paris}",
			bindings: render.Bindings{"city": " Tokyo "},
			want:     "Visit <b>Tokyo</b>",
		},
		{
			name:     "bound mode falls back to bare name",
			text:     "Dear ${name},",
			bindings: render.Bindings{},
			want:     "Dear <b>name</b>,",
		},
		{
			name:     "every occurrence replaced",
			text:     "${x} + ${x:1} = ${y}",
			bindings: render.Bindings{"x": "2"},
			want:     "<b>2</b> + <b>2</b> = <b>y</b>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render.Preview(tt.text, tt.bindings)
			if got != tt.want {
				t.Fatalf("Preview() = %q, want %q", got, tt.want)
			}
			if strings.Contains(got, "${") {
				t.Fatalf("Preview() left a raw placeholder: %q", got)
			}
		})
	}
}

func TestPreviewWithoutPlaceholdersIsUnchanged(t *testing.T) {
	texts := []string{"", "plain text", "costs $5 {not a var}", "<i>markup</i>"}
	for _, text := range texts {
		for _, bindings := range []render.Bindings{nil, {}, {"x": "y"}} {
			if got := render.Preview(text, bindings); got != text {
				t.Fatalf("Preview(%q) = %q, want unchanged", text, got)
			}
		}
	}
}

func TestPreviewCustomEmphasis(t *testing.T) {
	got := render.Preview("Hello ${who:world}", nil, render.WithEmphasis(func(v string) string {
		return "*" + v + "*"
	}))
	if want := "Hello *world*"; got != want {
		t.Fatalf("Preview() = %q, want %q", got, want)
	}
}

// A name declared with several defaults resolves every occurrence to the same
// value: the first declared default, or the bound value. This mirrors the
// catalog's observed behaviour and is kept on purpose.
func TestPreviewSameNameDifferentDefaultsCollapse(t *testing.T) {
	text := "${city:Paris} vs ${city:London}"

	if got, want := render.Preview(text, nil), "<b>Paris</b> vs <b>Paris</b>"; got != want {
		t.Fatalf("unbound Preview() = %q, want %q", got, want)
	}
	if got, want := render.Preview(text, render.Bindings{"city": "Rome"}), "<b>Rome</b> vs <b>Rome</b>"; got != want {
		t.Fatalf("bound Preview() = %q, want %q", got, want)
	}
}

func TestFinal(t *testing.T) {
	got := render.Final("Say ${word}", render.Bindings{"word": "hi"}, everyone)
	want := "Say hi Reply in English using formal tone for everyone."
	if got != want {
		t.Fatalf("Final() = %q, want %q", got, want)
	}
	if strings.Contains(got, "<b>") {
		t.Fatalf("Final() carries emphasis markup: %q", got)
	}
}

func TestFinalFallbackChain(t *testing.T) {
	text := "${a:alpha} ${b} ${c:gamma}"
	got := render.Final(text, render.Bindings{"c": "custom"}, everyone)
	want := "alpha b custom" + everyone.Suffix()
	if got != want {
		t.Fatalf("Final() = %q, want %q", got, want)
	}
}

func TestFinalWithoutPlaceholders(t *testing.T) {
	directives := render.Directives{Language: "German", Tone: "casual", Audience: "developers"}
	for _, text := range []string{"", "Act as a linux terminal."} {
		got := render.Final(text, render.Bindings{}, directives)
		if want := text + directives.Suffix(); got != want {
			t.Fatalf("Final(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestFinalInsertsValuesVerbatim(t *testing.T) {
	got := render.Final("x=${x}", render.Bindings{"x": "$1 & ${y}"}, render.Directives{Language: "a&b", Tone: "<t>", Audience: "%"})
	want := "x=$1 & ${y} Reply in a&b using <t> tone for %."
	if got != want {
		t.Fatalf("Final() = %q, want %q", got, want)
	}
}

func TestSuffix(t *testing.T) {
	if got, want := everyone.Suffix(), " Reply in English using formal tone for everyone."; got != want {
		t.Fatalf("Suffix() = %q, want %q", got, want)
	}
}

func TestResolve(t *testing.T) {
	text := "${city:Paris} ${city:London} ${day}"
	specs := []struct {
		name     string
		bindings render.Bindings
		want     string
	}{
		{"city", nil, "Paris"},
		{"city", render.Bindings{"city": "Oslo"}, "Oslo"},
		{"day", nil, "day"},
		{"unknown", nil, "unknown"},
	}
	for _, tt := range specs {
		got := render.Resolve(placeholder.Extract(text), tt.bindings, tt.name)
		if got != tt.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestBindingsClone(t *testing.T) {
	orig := render.Bindings{"a": "1"}
	clone := orig.Clone()
	clone["a"] = "2"
	if orig["a"] != "1" {
		t.Fatalf("Clone shares storage with original")
	}
	if render.Bindings(nil).Clone() != nil {
		t.Fatalf("Clone of nil should stay nil")
	}
}
