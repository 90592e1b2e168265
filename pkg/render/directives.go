package render

import "fmt"

// Directives carries the already-resolved language, tone, and audience that
// finalized prompts end with. Callers own where these values come from.
type Directives struct {
	Language string `json:"language"`
	Tone     string `json:"tone"`
	Audience string `json:"audience"`
}

// Suffix returns the sentence appended to finalized text, including its
// leading space.
func (d Directives) Suffix() string {
	return fmt.Sprintf(" Reply in %s using %s tone for %s.", d.Language, d.Tone, d.Audience)
}
