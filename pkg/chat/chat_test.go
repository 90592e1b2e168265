package chat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptcat/pkg/chat"
)

func TestEncodeComponent(t *testing.T) {
	tests := map[string]string{
		"":                             "",
		"hello world":                  "hello%20world",
		"a+b=c&d":                      "a%2Bb%3Dc%26d",
		"keep -_.!~*'()":               "keep%20-_.!~*'()",
		"Reply in English.":            "Reply%20in%20English.",
		"path/to?x#y":                  "path%2Fto%3Fx%23y",
		"héllo":                        "h%C3%A9llo",
		"line\nbreak":                  "line%0Abreak",
		"${city:Paris} 100% [ok] @you": "%24%7Bcity%3AParis%7D%20100%25%20%5Bok%5D%20%40you",
	}
	for in, want := range tests {
		if got := chat.EncodeComponent(in); got != want {
			t.Fatalf("EncodeComponent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestURL(t *testing.T) {
	text := "Say hi Reply in English using formal tone for everyone."
	enc := chat.EncodeComponent(text)

	tests := []struct {
		platform string
		base     string
		want     string
	}{
		{chat.ChatGPT, "", "https://chatgpt.com?prompt=" + enc},
		{chat.GitHubCopilot, "", "https://github.com/copilot?prompt=" + enc},
		{chat.Claude, "", "https://claude.ai/new?q=" + enc},
		{chat.Mistral, "", "https://chat.mistral.ai/chat?q=" + enc},
		{chat.Grok, "", "https://grok.com/?referrer=promptcat&q=" + enc},
		{chat.Grok, "https://grok.example", "https://grok.example?q=" + enc},
		{chat.Perplexity, "", "https://www.perplexity.ai/search?q=" + enc},
		{chat.Perplexity, "https://pplx.example/", "https://pplx.example/search?q=" + enc},
		{"newchat", "https://new.example/chat", "https://new.example/chat?q=" + enc},
		{" ChatGPT ", "", "https://chatgpt.com?prompt=" + enc},
	}
	for _, tt := range tests {
		got, err := chat.URL(tt.platform, tt.base, text)
		if err != nil {
			t.Fatalf("URL(%q): %v", tt.platform, err)
		}
		if got != tt.want {
			t.Fatalf("URL(%q) = %q, want %q", tt.platform, got, tt.want)
		}
	}
}

func TestURLUnknownPlatformWithoutBase(t *testing.T) {
	if _, err := chat.URL("newchat", "", "x"); !errors.Is(err, chat.ErrUnknownPlatform) {
		t.Fatalf("expected ErrUnknownPlatform, got %v", err)
	}
}

func TestPlatforms(t *testing.T) {
	var names []string
	for _, p := range chat.Platforms() {
		names = append(names, p.Name)
	}
	want := []string{"chatgpt", "claude", "github-copilot", "grok", "mistral", "perplexity"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("platforms mismatch (-want +got):\n%s", diff)
	}
	if !chat.Known("Claude") || chat.Known("bard") {
		t.Fatalf("Known returned unexpected results")
	}
}

func TestExporter(t *testing.T) {
	var copied, opened string
	exporter := chat.NewExporter(
		chat.WithClipboard(chat.ClipboardFunc(func(s string) error { copied = s; return nil })),
		chat.WithOpener(chat.OpenerFunc(func(u string) error { opened = u; return nil })),
		chat.WithBaseURL(chat.Claude, "https://claude.example"),
	)

	if err := exporter.Copy(context.Background(), "final text"); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if copied != "final text" {
		t.Fatalf("clipboard got %q", copied)
	}

	link, err := exporter.Open(context.Background(), chat.Claude, "a b")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if want := "https://claude.example?q=a%20b"; link != want || opened != want {
		t.Fatalf("open link = %q (opened %q), want %q", link, opened, want)
	}
}

func TestExporterErrors(t *testing.T) {
	boom := errors.New("boom")
	exporter := chat.NewExporter(
		chat.WithClipboard(chat.ClipboardFunc(func(string) error { return chat.ErrUnsupportedClipboard })),
		chat.WithOpener(chat.OpenerFunc(func(string) error { return boom })),
	)

	if err := exporter.Copy(context.Background(), "x"); !errors.Is(err, chat.ErrUnsupportedClipboard) {
		t.Fatalf("expected ErrUnsupportedClipboard, got %v", err)
	}

	link, err := exporter.Open(context.Background(), chat.ChatGPT, "x")
	if !errors.Is(err, boom) {
		t.Fatalf("expected opener error, got %v", err)
	}
	if link != "https://chatgpt.com?prompt=x" {
		t.Fatalf("expected link to be returned on failure, got %q", link)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := exporter.Copy(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
