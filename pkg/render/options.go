package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers use to customise
// their output without mutating the catalog view.
type RenderOptions struct {
	// Values pre-populates variable inputs keyed by placeholder name. Nil
	// means no editing session has started.
	Values Bindings
	// Directives is appended to every finalized prompt.
	Directives Directives
	// Platform selects the chat service used when building export URLs.
	Platform string
	// Theme carries resolved tokens and CSS variables for HTML renderers.
	Theme *theme.RendererConfig
}
