package prefs

import "errors"

// ErrUnknownKey is returned by Get and Set for keys outside the stored set.
var ErrUnknownKey = errors.New("prefs: unknown key")
