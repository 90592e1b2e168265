package promptcat

import (
	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-promptcat/internal/catalog/loader"
	internalParser "github.com/goliatone/go-promptcat/internal/catalog/parser"
	"github.com/goliatone/go-promptcat/pkg/catalog"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...catalog.LoaderOption) catalog.Loader {
	return NewLoaderWithLogger(zap.NewNop(), options...)
}

// NewLoaderWithLogger is NewLoader with load diagnostics sent to logger.
func NewLoaderWithLogger(logger *zap.Logger, options ...catalog.LoaderOption) catalog.Loader {
	cfg := catalog.NewLoaderOptions(options...)
	return internalLoader.New(cfg, logger)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...catalog.ParserOption) catalog.Parser {
	cfg := catalog.NewParserOptions(options...)
	return internalParser.New(cfg)
}
