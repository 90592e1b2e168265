// Package prefs stores the reader's language, tone, audience, platform, and
// theme choices as flat key/value pairs and resolves them into the directive
// context appended to finalized prompts.
package prefs

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-promptcat/pkg/chat"
	"github.com/goliatone/go-promptcat/pkg/render"
)

// Custom is the sentinel language or tone value that defers to the free-text
// override field.
const Custom = "custom"

// Storage keys.
const (
	KeyLanguage       = "selected-language"
	KeyCustomLanguage = "custom-language"
	KeyTone           = "selected-tone"
	KeyCustomTone     = "custom-tone"
	KeyAudience       = "audience"
	KeyPlatform       = "selected-platform"
	KeyDarkMode       = "dark-mode"
)

// Defaults.
const (
	DefaultLanguage = "English"
	DefaultTone     = "professional"
	DefaultAudience = "everyone"
)

// Preferences is the reader's saved directive context.
type Preferences struct {
	Language       string `json:"selected-language" validate:"required"`
	CustomLanguage string `json:"custom-language" validate:"required_if=Language custom"`
	Tone           string `json:"selected-tone" validate:"required"`
	CustomTone     string `json:"custom-tone" validate:"required_if=Tone custom"`
	Audience       string `json:"audience" validate:"oneof=everyone developers"`
	Platform       string `json:"selected-platform" validate:"required,platform"`
	DarkMode       bool   `json:"dark-mode"`
}

// Default returns the preferences used before anything is saved.
func Default() Preferences {
	return Preferences{
		Language: DefaultLanguage,
		Tone:     DefaultTone,
		Audience: DefaultAudience,
		Platform: chat.DefaultPlatform,
	}
}

// SetLanguage selects a language. Choosing anything but Custom clears the
// custom override.
func (p *Preferences) SetLanguage(language, custom string) {
	p.Language = strings.TrimSpace(language)
	if p.Language == Custom {
		p.CustomLanguage = strings.TrimSpace(custom)
		return
	}
	p.CustomLanguage = ""
}

// SetTone selects a tone. Choosing anything but Custom clears the custom
// override.
func (p *Preferences) SetTone(tone, custom string) {
	p.Tone = strings.TrimSpace(tone)
	if p.Tone == Custom {
		p.CustomTone = strings.TrimSpace(custom)
		return
	}
	p.CustomTone = ""
}

// ResolvedLanguage returns the language written into directives.
func (p Preferences) ResolvedLanguage() string {
	return resolve(p.Language, p.CustomLanguage, DefaultLanguage)
}

// ResolvedTone returns the tone written into directives.
func (p Preferences) ResolvedTone() string {
	return resolve(p.Tone, p.CustomTone, DefaultTone)
}

// Directives resolves the custom sentinels and returns the context the
// renderer appends to finalized text.
func (p Preferences) Directives() render.Directives {
	audience := strings.TrimSpace(p.Audience)
	if audience == "" {
		audience = DefaultAudience
	}
	return render.Directives{
		Language: p.ResolvedLanguage(),
		Tone:     p.ResolvedTone(),
		Audience: audience,
	}
}

// Theme returns the theme variant name for the dark-mode flag.
func (p Preferences) Theme() string {
	if p.DarkMode {
		return "dark"
	}
	return "light"
}

// Validate checks the preferences with go-playground/validator.
func (p Preferences) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("prefs: invalid preferences: %w", err)
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		return chat.Known(fl.Field().String())
	})
	return v
}

func resolve(selected, custom, fallback string) string {
	selected = strings.TrimSpace(selected)
	if selected == Custom {
		selected = strings.TrimSpace(custom)
	}
	if selected == "" {
		return fallback
	}
	return selected
}
