package chat

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Opener opens a URL in the user's browser.
type Opener interface {
	Open(url string) error
}

// ClipboardFunc adapts a function into a Clipboard.
type ClipboardFunc func(string) error

// WriteAll calls fn.
func (fn ClipboardFunc) WriteAll(text string) error { return fn(text) }

// OpenerFunc adapts a function into an Opener.
type OpenerFunc func(string) error

// Open calls fn.
func (fn OpenerFunc) Open(url string) error { return fn(url) }

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupportedClipboard
	}
	return clipboard.WriteAll(text)
}

type systemOpener struct{}

func (systemOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(e *Exporter) {
		if c != nil {
			e.clipboard = c
		}
	}
}

// WithOpener replaces the system browser opener.
func WithOpener(o Opener) Option {
	return func(e *Exporter) {
		if o != nil {
			e.opener = o
		}
	}
}

// WithLogger sets the logger used for export events.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithBaseURL overrides the base URL of one platform.
func WithBaseURL(platform, base string) Option {
	return func(e *Exporter) {
		if e.bases == nil {
			e.bases = make(map[string]string)
		}
		e.bases[platform] = base
	}
}

// Exporter sends finalized prompts to the clipboard or a chat service.
type Exporter struct {
	clipboard Clipboard
	opener    Opener
	logger    *zap.Logger
	bases     map[string]string
}

// NewExporter builds an Exporter backed by the system clipboard and browser
// unless overridden.
func NewExporter(options ...Option) *Exporter {
	e := &Exporter{
		clipboard: systemClipboard{},
		opener:    systemOpener{},
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Copy writes text to the clipboard.
func (e *Exporter) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.clipboard.WriteAll(text); err != nil {
		e.logger.Warn("clipboard write failed", zap.Error(err))
		return fmt.Errorf("chat: copy: %w", err)
	}
	e.logger.Info("prompt copied", zap.Int("length", len(text)))
	return nil
}

// URL builds the platform link for text, honouring base URL overrides.
func (e *Exporter) URL(platform, text string) (string, error) {
	return URL(platform, e.bases[platform], text)
}

// Open builds the platform link for text and opens it. The URL is returned
// so callers can print it when no browser is available.
func (e *Exporter) Open(ctx context.Context, platform, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	link, err := e.URL(platform, text)
	if err != nil {
		return "", err
	}
	if err := e.opener.Open(link); err != nil {
		e.logger.Warn("browser open failed", zap.String("platform", platform), zap.Error(err))
		return link, fmt.Errorf("chat: open %s: %w", platform, err)
	}
	e.logger.Info("prompt opened", zap.String("platform", platform))
	return link, nil
}
