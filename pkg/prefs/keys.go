package prefs

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Keys lists the storage keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, 7)
	for key := range Default().values() {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the stored value for key as text.
func (p Preferences) Get(key string) (string, error) {
	value, ok := p.values()[strings.TrimSpace(key)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return fmt.Sprint(value), nil
}

// Set assigns one key. Setting a language or tone to anything but Custom
// clears its override; setting an override leaves the selection alone.
func (p *Preferences) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch strings.TrimSpace(key) {
	case KeyLanguage:
		p.SetLanguage(value, p.CustomLanguage)
	case KeyCustomLanguage:
		p.CustomLanguage = value
	case KeyTone:
		p.SetTone(value, p.CustomTone)
	case KeyCustomTone:
		p.CustomTone = value
	case KeyAudience:
		p.Audience = strings.ToLower(value)
	case KeyPlatform:
		p.Platform = strings.ToLower(value)
	case KeyDarkMode:
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("prefs: %s: %w", KeyDarkMode, err)
		}
		p.DarkMode = on
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}
