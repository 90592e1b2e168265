package model

// Options configures the Builder. The public adapter in pkg/model fills
// these from functional options.
type Options struct {
	Labeler   func(string) string
	Previewer func(string) string
}

func defaultOptions() Options {
	return Options{
		Labeler: DefaultLabeler,
	}
}
