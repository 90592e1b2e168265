// Package chat builds chat-service URLs for finalized prompts and delivers
// prompts to the system clipboard or browser.
package chat

import (
	"sort"
	"strings"
)

// Platform is a chat service a prompt can be opened in.
type Platform struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	BaseURL string `json:"baseUrl"`
}

// Known platform identifiers.
const (
	ChatGPT       = "chatgpt"
	Claude        = "claude"
	GitHubCopilot = "github-copilot"
	Grok          = "grok"
	Perplexity    = "perplexity"
	Mistral       = "mistral"
)

// DefaultPlatform is used when no platform preference is set.
const DefaultPlatform = ChatGPT

var platforms = map[string]Platform{
	ChatGPT:       {Name: ChatGPT, Label: "ChatGPT", BaseURL: "https://chatgpt.com"},
	Claude:        {Name: Claude, Label: "Claude", BaseURL: "https://claude.ai/new"},
	GitHubCopilot: {Name: GitHubCopilot, Label: "GitHub Copilot", BaseURL: "https://github.com/copilot"},
	Grok:          {Name: Grok, Label: "Grok", BaseURL: "https://grok.com/?referrer=promptcat"},
	Perplexity:    {Name: Perplexity, Label: "Perplexity", BaseURL: "https://www.perplexity.ai"},
	Mistral:       {Name: Mistral, Label: "Mistral", BaseURL: "https://chat.mistral.ai/chat"},
}

// Lookup returns the platform registered under name.
func Lookup(name string) (Platform, bool) {
	p, ok := platforms[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Known reports whether name is a registered platform.
func Known(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// Platforms lists the registered platforms sorted by name.
func Platforms() []Platform {
	out := make([]Platform, 0, len(platforms))
	for _, p := range platforms {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
