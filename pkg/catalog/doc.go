// Package catalog holds the prompt records a promptcat session browses and the
// contracts used to load them. A catalog is a flat list of Record values read
// from CSV (the header row is act,prompt,for_devs), YAML, or JSON documents.
// Loaders fetch raw bytes from files, fs.FS entries, or URLs; parsers turn
// those bytes into records. Concrete implementations live under
// internal/catalog and are constructed through the root promptcat package.
//
// Catalog values are immutable. Filtering and searching return new catalogs
// so calls chain:
//
//	view := cat.FilterAudience(catalog.AudienceDevelopers).Search("linux")
package catalog
