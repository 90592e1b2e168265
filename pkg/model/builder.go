package model

import (
	"github.com/goliatone/go-promptcat/internal/model"
	"github.com/goliatone/go-promptcat/pkg/catalog"
)

// Builder converts catalog records into form models.
type Builder interface {
	Build(record catalog.Record) (FormModel, error)
	BuildAll(records []catalog.Record) ([]FormModel, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	labeler   func(string) string
	previewer func(string) string
}

// WithLabeler overrides the default label generation function.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *builderOptions) {
		opts.labeler = labeler
	}
}

// WithPreviewer sets the function used to fill FormModel.Preview. Without
// one the preview is left empty and renderers compute their own.
func WithPreviewer(previewer func(string) string) BuilderOption {
	return func(opts *builderOptions) {
		opts.previewer = previewer
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	return model.New(model.Options{
		Labeler:   cfg.labeler,
		Previewer: cfg.previewer,
	})
}
