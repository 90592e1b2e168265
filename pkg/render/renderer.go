package render

import (
	"context"

	"github.com/goliatone/go-promptcat/pkg/model"
)

// Renderer converts a catalog view into a byte representation (HTML, text,
// or the outcome of an interactive terminal session).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view model.CatalogView, options RenderOptions) ([]byte, error)
}
