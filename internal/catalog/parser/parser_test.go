package parser_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptcat/internal/catalog/parser"
	"github.com/goliatone/go-promptcat/pkg/catalog"
)

func load(t *testing.T, name string) catalog.Document {
	t.Helper()
	path := filepath.Join("testdata", name)
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return catalog.MustNewDocument(catalog.SourceFromFile(path), raw)
}

func TestParser_CSV(t *testing.T) {
	p := parser.New(catalog.NewParserOptions())

	got, err := p.Records(context.Background(), load(t, "prompts.csv"))
	if err != nil {
		t.Fatalf("records: %v", err)
	}

	want := []catalog.Record{
		{Act: "Linux Terminal", Prompt: "I want you to act as a linux terminal. My first command is ${command:pwd}", ForDevelopers: true},
		{Act: "Travel Guide", Prompt: "I want you to act as a travel guide. I am in ${city:Istanbul}, suggest places to visit."},
		{Act: "Quoted Speaker", Prompt: `Say "hello, world" to ${name}`, ForDevelopers: true},
		{Act: "Plain Row", Prompt: "Plain prompt text"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_CSVMissingColumn(t *testing.T) {
	p := parser.New(catalog.NewParserOptions())
	doc := catalog.MustNewDocument(catalog.SourceFromFile("bad.csv"), []byte("title,body\nA,B\n"))

	_, err := p.Records(context.Background(), doc)
	if !errors.Is(err, catalog.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestParser_CSVCustomComma(t *testing.T) {
	p := parser.New(catalog.NewParserOptions(catalog.WithComma(';')))
	doc := catalog.MustNewDocument(catalog.SourceFromFile("p.csv"), []byte("act;prompt;for_devs\nPoet;Write, then rest;TRUE\n"))

	got, err := p.Records(context.Background(), doc)
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	want := []catalog.Record{{Act: "Poet", Prompt: "Write, then rest", ForDevelopers: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_HeaderOnly(t *testing.T) {
	p := parser.New(catalog.NewParserOptions())
	doc := catalog.MustNewDocument(catalog.SourceFromFile("p.csv"), []byte("act,prompt,for_devs\n"))

	got, err := p.Records(context.Background(), doc)
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestParser_Structured(t *testing.T) {
	want := []catalog.Record{
		{Act: "Linux Terminal", Prompt: "I want you to act as a linux terminal. My first command is ${command:pwd}", ForDevelopers: true},
		{Act: "Travel Guide", Prompt: "I want you to act as a travel guide."},
	}

	for _, name := range []string{"prompts.yaml", "prompts.json"} {
		t.Run(name, func(t *testing.T) {
			p := parser.New(catalog.NewParserOptions())
			got, err := p.Records(context.Background(), load(t, name))
			if err != nil {
				t.Fatalf("records: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("records mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_ForcedFormat(t *testing.T) {
	p := parser.New(catalog.NewParserOptions(catalog.WithFormat(catalog.FormatJSON)))
	doc := catalog.MustNewDocument(catalog.SourceFromURL("https://example.com/catalog"), []byte(`[{"act":"A","prompt":"B","for_devs":true}]`))

	got, err := p.Records(context.Background(), doc)
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if len(got) != 1 || !got[0].ForDevelopers {
		t.Fatalf("unexpected records %+v", got)
	}
}

func TestParser_UnsupportedFormat(t *testing.T) {
	p := parser.New(catalog.NewParserOptions(catalog.WithFormat("toml")))
	doc := catalog.MustNewDocument(catalog.SourceFromFile("p.toml"), []byte("x"))

	if _, err := p.Records(context.Background(), doc); !errors.Is(err, catalog.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
