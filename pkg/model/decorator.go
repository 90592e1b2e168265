package model

import (
	"fmt"
	"strings"
)

// Decorator adjusts a form model after it is built and before it is
// rendered.
type Decorator interface {
	Decorate(*FormModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FormModel) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *FormModel) error {
	return fn(form)
}

// FieldLabels relabels fields by placeholder name. Names absent from labels
// keep their generated label.
func FieldLabels(labels map[string]string) Decorator {
	return DecoratorFunc(func(form *FormModel) error {
		for i, field := range form.Fields {
			if label := strings.TrimSpace(labels[field.Name]); label != "" {
				form.Fields[i].Label = label
			}
		}
		return nil
	})
}

// Annotate sets a metadata entry on every form.
func Annotate(key, value string) Decorator {
	return DecoratorFunc(func(form *FormModel) error {
		if key == "" {
			return fmt.Errorf("model: annotate: empty metadata key")
		}
		if form.Metadata == nil {
			form.Metadata = make(map[string]string)
		}
		form.Metadata[key] = value
		return nil
	})
}
