package vanilla

import (
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-promptcat/pkg/render"
)

var (
	cssNamePattern  = regexp.MustCompile(`^--[a-zA-Z0-9_-]+$`)
	cssValuePattern = regexp.MustCompile(`^[a-zA-Z0-9#%.,()\s/-]+$`)
)

// previewPolicy keeps the emphasis markup and escapes everything else.
func previewPolicy() *bluemonday.Policy {
	return bluemonday.StrictPolicy().AllowElements("b")
}

// previewHTML escapes the prompt and its bindings before substitution so
// only the emphasis tags are markup, then runs the result through policy.
func previewHTML(policy *bluemonday.Policy, prompt string, bindings render.Bindings) string {
	var escaped render.Bindings
	if bindings != nil {
		escaped = make(render.Bindings, len(bindings))
		for name, value := range bindings {
			escaped[html.EscapeString(name)] = html.EscapeString(value)
		}
	}
	return policy.Sanitize(render.Preview(html.EscapeString(prompt), escaped))
}

// rootStyle renders CSS custom properties as a :root rule, dropping names or
// values that could break out of the declaration.
func rootStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {")
	for _, name := range names {
		value := strings.TrimSpace(vars[name])
		if !cssNamePattern.MatchString(name) || !cssValuePattern.MatchString(value) {
			continue
		}
		fmt.Fprintf(&b, " %s: %s;", name, value)
	}
	b.WriteString(" }")
	return b.String()
}

func controlID(formID, name string) string {
	return "pc-" + formID + "-" + strings.Join(strings.Fields(name), "-")
}
