package chat

import (
	"fmt"
	"net/url"
	"strings"
)

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s with the same reserved set as the
// JavaScript encodeURIComponent function, so URLs match the ones a browser
// front-end would produce.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// URL builds the link that opens text in the named platform. An empty base
// uses the platform's registered base URL.
func URL(platform, base, text string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(platform))
	if base == "" {
		p, ok := Lookup(name)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
		}
		base = p.BaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return "", fmt.Errorf("chat: invalid base url %q: %w", base, err)
	}

	encoded := EncodeComponent(text)
	switch name {
	case ChatGPT, GitHubCopilot:
		return base + "?prompt=" + encoded, nil
	case Perplexity:
		return strings.TrimRight(base, "/") + "/search?q=" + encoded, nil
	default:
		return base + querySeparator(base) + "q=" + encoded, nil
	}
}

func querySeparator(base string) string {
	if strings.Contains(base, "?") {
		return "&"
	}
	return "?"
}
