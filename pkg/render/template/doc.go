// Package template defines the template engine seam used by the HTML
// renderers. Implementations live in subpackages (see gotemplate).
package template
