// Package model defines the typed form model consumed by renderers. A
// FormModel describes one catalog prompt: its title, raw text, and one Field
// per distinct ${name} placeholder (the first declared default wins, and the
// input placeholder text is the default or "Enter <name>"). CatalogView wraps
// the filtered list of forms together with the "Found N of M" heading.
// Builders reside in internal/model but return the types defined here.
package model
