// Package parser decodes catalog documents into records.
package parser

import (
	"context"
	"fmt"

	"github.com/goliatone/go-promptcat/pkg/catalog"
)

// Parser implements catalog.Parser for CSV, YAML, and JSON documents.
type Parser struct {
	opts catalog.ParserOptions
}

var _ catalog.Parser = (*Parser)(nil)

// New constructs a Parser from resolved options.
func New(options catalog.ParserOptions) *Parser {
	if options.Comma == 0 {
		options.Comma = ','
	}
	return &Parser{opts: options}
}

// Records decodes doc. Records missing an act or a prompt are dropped.
func (p *Parser) Records(ctx context.Context, doc catalog.Document) ([]catalog.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := p.opts.Format
	if format == "" {
		format = doc.Format()
	}

	var (
		records []catalog.Record
		err     error
	)
	switch format {
	case catalog.FormatCSV:
		records, err = parseCSV(doc.Raw(), p.opts.Comma)
	case catalog.FormatYAML:
		records, err = parseYAML(doc.Raw())
	case catalog.FormatJSON:
		records, err = parseJSON(doc.Raw())
	default:
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog parser: %s %s: %w", format, doc.Location(), err)
	}

	kept := records[:0]
	for _, record := range records {
		if record.Valid() {
			kept = append(kept, record)
		}
	}
	return kept, nil
}
