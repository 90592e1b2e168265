package promptcat

import (
	"io/fs"

	vanilla "github.com/goliatone/go-promptcat/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the vanilla stylesheet for callers serving it as a
// theme asset.
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
