package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoPrompts is returned when the view has nothing to pick from.
	ErrNoPrompts = errors.New("tui: no prompts to show")
)
