package promptcat

import (
	"embed"

	"github.com/goliatone/go-promptcat/pkg/catalog"
)

//go:embed samples/prompts.csv
var embeddedSamples embed.FS

// SampleLocation names the bundled catalog inside SamplesFS.
const SampleLocation = "samples/prompts.csv"

// SamplesFS exposes the bundled catalog so it can be loaded through an fs
// source:
//
//	loader := promptcat.NewLoader(catalog.WithFileSystem(promptcat.SamplesFS()))
//	doc, err := loader.Load(ctx, catalog.SourceFromFS(promptcat.SampleLocation))
func SamplesFS() embed.FS {
	return embeddedSamples
}

// SampleDocument returns the bundled catalog as a document.
func SampleDocument() catalog.Document {
	raw, err := embeddedSamples.ReadFile(SampleLocation)
	if err != nil {
		panic(err)
	}
	return catalog.MustNewDocument(catalog.SourceFromFS(SampleLocation), raw)
}
