package model

import internalmodel "github.com/goliatone/go-promptcat/internal/model"

type Field = internalmodel.Field
type FormModel = internalmodel.FormModel
type CatalogView = internalmodel.CatalogView

// Slug re-exports the identifier derivation used for form IDs.
func Slug(title string) string {
	return internalmodel.Slug(title)
}
