package chat

import "errors"

var (
	// ErrUnknownPlatform is returned when no base URL is known for a platform.
	ErrUnknownPlatform = errors.New("chat: unknown platform")
	// ErrUnsupportedClipboard is returned when the host has no clipboard
	// utility available.
	ErrUnsupportedClipboard = errors.New("chat: clipboard not supported on this system")
)
