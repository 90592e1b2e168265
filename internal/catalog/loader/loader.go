// Package loader implements catalog.Loader over files, fs.FS entries, and
// HTTP endpoints.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-promptcat/pkg/catalog"
)

// Loader dispatches on the source kind.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	logger    *zap.Logger
}

var _ catalog.Loader = (*Loader)(nil)

// New constructs a Loader from resolved options. A nil logger disables
// logging.
func New(options catalog.LoaderOptions, logger *zap.Logger) *Loader {
	timeout := options.RequestTimeout

	var client *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		client = &clone
	case options.AllowHTTPFallback:
		client = &http.Client{Timeout: timeout}
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      client,
		allowHTTP: client != nil,
		timeout:   timeout,
		logger:    logger,
	}
}

// Load reads the source and wraps the bytes in a Document.
func (l *Loader) Load(ctx context.Context, src catalog.Source) (catalog.Document, error) {
	if src == nil {
		return catalog.Document{}, errors.New("catalog loader: source is nil")
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case catalog.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case catalog.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case catalog.SourceKindURL:
		if !l.allowHTTP {
			return catalog.Document{}, errors.New("catalog loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("catalog loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		l.logger.Debug("catalog load failed",
			zap.String("kind", string(src.Kind())),
			zap.String("location", src.Location()),
			zap.Error(err),
		)
		return catalog.Document{}, err
	}

	l.logger.Debug("catalog loaded",
		zap.String("kind", string(src.Kind())),
		zap.String("location", src.Location()),
		zap.Int("bytes", len(data)),
	)
	return catalog.NewDocument(src, data)
}
