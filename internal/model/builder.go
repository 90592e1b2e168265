package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-promptcat/pkg/catalog"
	"github.com/goliatone/go-promptcat/pkg/placeholder"
)

// Builder converts catalog records into form models.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	opts.Previewer = options.Previewer
	return &Builder{opts: opts}
}

// Build turns one record into a FormModel. Each distinct placeholder name
// becomes a field carrying the first default declared for it.
func (b *Builder) Build(record catalog.Record) (FormModel, error) {
	if err := validateRecord(record); err != nil {
		return FormModel{}, err
	}

	specs := placeholder.Extract(record.Prompt)
	form := FormModel{
		ID:            Slug(record.Act),
		Title:         strings.TrimSpace(record.Act),
		Prompt:        record.Prompt,
		ForDevelopers: record.ForDevelopers,
		Fields:        make([]Field, 0, len(specs)),
	}

	for _, name := range placeholder.Names(specs) {
		spec, _ := placeholder.Lookup(specs, name)
		form.Fields = append(form.Fields, Field{
			Name:        name,
			Label:       b.label(name),
			Default:     spec.Default,
			Placeholder: inputPlaceholder(spec),
		})
	}

	if b.opts.Previewer != nil {
		form.Preview = b.opts.Previewer(record.Prompt)
	}

	form.Metadata = map[string]string{
		"variables": strconv.Itoa(len(form.Fields)),
	}
	if len(specs) > len(form.Fields) {
		form.Metadata["conflictingDefaults"] = "true"
	}
	if record.ForDevelopers {
		form.Metadata["audience"] = string(catalog.AudienceDevelopers)
	}
	return form, nil
}

// BuildAll builds every record, suffixing repeated slugs (-2, -3, ...) so
// IDs stay unique within one view.
func (b *Builder) BuildAll(records []catalog.Record) ([]FormModel, error) {
	forms := make([]FormModel, 0, len(records))
	seen := make(map[string]int, len(records))
	for _, record := range records {
		form, err := b.Build(record)
		if err != nil {
			return nil, err
		}
		seen[form.ID]++
		if n := seen[form.ID]; n > 1 {
			form.ID = fmt.Sprintf("%s-%d", form.ID, n)
		}
		forms = append(forms, form)
	}
	return forms, nil
}

func (b *Builder) label(name string) string {
	if label := b.opts.Labeler(name); label != "" {
		return label
	}
	return name
}

func inputPlaceholder(spec placeholder.Spec) string {
	if spec.Default != "" {
		return spec.Default
	}
	return "Enter " + spec.Name
}

func validateRecord(record catalog.Record) error {
	if strings.TrimSpace(record.Act) == "" {
		return errors.New("model builder: record act is required")
	}
	if strings.TrimSpace(record.Prompt) == "" {
		return fmt.Errorf("model builder: record %q has no prompt", record.Act)
	}
	return nil
}
