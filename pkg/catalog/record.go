package catalog

import "strings"

// Record is a single catalog entry. Act is the display title, Prompt the
// template text that may contain ${name} or ${name:default} placeholders.
type Record struct {
	Act           string `json:"act" yaml:"act"`
	Prompt        string `json:"prompt" yaml:"prompt"`
	ForDevelopers bool   `json:"for_devs" yaml:"for_devs"`
}

// Valid reports whether the record carries both an act and a prompt.
func (r Record) Valid() bool {
	return strings.TrimSpace(r.Act) != "" && strings.TrimSpace(r.Prompt) != ""
}

// ParseForDevs interprets a for_devs cell. Only a case-insensitive "TRUE"
// marks a developer prompt.
func ParseForDevs(value string) bool {
	return strings.ToUpper(strings.TrimSpace(value)) == "TRUE"
}

// Audience selects which records a reader sees.
type Audience string

const (
	AudienceEveryone   Audience = "everyone"
	AudienceDevelopers Audience = "developers"
)

// ParseAudience normalises user input. Unknown values map to everyone.
func ParseAudience(value string) Audience {
	if Audience(strings.ToLower(strings.TrimSpace(value))) == AudienceDevelopers {
		return AudienceDevelopers
	}
	return AudienceEveryone
}
