package catalog

import "context"

// Parser turns a Document into records. Implementations live under
// internal/catalog/parser.
type Parser interface {
	Records(ctx context.Context, doc Document) ([]Record, error)
}

// ParserOptions controls decoding.
type ParserOptions struct {
	// Format forces a decoder instead of guessing from the document location.
	Format Format

	// Comma overrides the CSV field delimiter.
	Comma rune
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithFormat forces the document format.
func WithFormat(format Format) ParserOption {
	return func(opts *ParserOptions) {
		opts.Format = format
	}
}

// WithComma sets the CSV delimiter.
func WithComma(r rune) ParserOption {
	return func(opts *ParserOptions) {
		if r != 0 {
			opts.Comma = r
		}
	}
}

// NewParserOptions applies options over the defaults.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{Comma: ','}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
