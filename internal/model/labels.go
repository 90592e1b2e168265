package model

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)
	slugPattern       = regexp.MustCompile(`[^a-z0-9]+`)
)

// DefaultLabeler turns a placeholder name into a label. It splits on
// underscores, dashes, whitespace, and camelCase boundaries, then title-cases
// each word. Names that already contain spaces keep their casing.
func DefaultLabeler(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.ContainsAny(name, " \t") {
		return strings.Join(strings.Fields(name), " ")
	}

	var segments []string
	for _, word := range splitWordsPattern.Split(name, -1) {
		if word == "" {
			continue
		}
		segments = append(segments, titleCase(splitCamel(word)))
	}
	return strings.Join(segments, " ")
}

// Slug derives a URL-safe identifier from an act title.
func Slug(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "prompt"
	}
	return slug
}

func splitCamel(input string) string {
	runes := []rune(input)
	var out strings.Builder
	for i, r := range runes {
		if i > 0 && isBoundary(runes[i-1], r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(prev, r rune) bool {
	return (unicode.IsLower(prev) && unicode.IsUpper(r)) ||
		(unicode.IsLetter(prev) && unicode.IsDigit(r)) ||
		(unicode.IsDigit(prev) && unicode.IsLetter(r))
}

func titleCase(words string) string {
	parts := strings.Fields(words)
	for i, part := range parts {
		runes := []rune(strings.ToLower(part))
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
