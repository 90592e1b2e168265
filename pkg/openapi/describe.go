package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-promptcat/pkg/catalog"
	"github.com/goliatone/go-promptcat/pkg/model"
)

const (
	// PathPrefix is prepended to each prompt slug.
	PathPrefix = "/prompts/"
	// ExtensionForDevelopers marks developer-only operations.
	ExtensionForDevelopers = "x-promptcat-for-devs"
	// ExtensionPrompt carries the raw prompt text.
	ExtensionPrompt = "x-promptcat-prompt"
)

// Info is the document-level metadata.
type Info struct {
	Title       string
	Version     string
	Description string
}

func (i Info) withDefaults() Info {
	if strings.TrimSpace(i.Title) == "" {
		i.Title = "Prompt catalog"
	}
	if strings.TrimSpace(i.Version) == "" {
		i.Version = "1.0.0"
	}
	return i
}

// Option configures Describe.
type Option func(*config)

type config struct {
	builder model.Builder
}

// WithModelBuilder overrides the builder used to derive slugs and fields.
func WithModelBuilder(builder model.Builder) Option {
	return func(cfg *config) {
		if builder != nil {
			cfg.builder = builder
		}
	}
}

// Describe builds and validates an OpenAPI document for records. Each
// prompt becomes POST /prompts/{slug} with one optional string property per
// placeholder name, defaulting to the first declared default, and a
// text/plain response carrying the finalized prompt.
func Describe(ctx context.Context, records []catalog.Record, info Info, options ...Option) (*openapi3.T, error) {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.builder == nil {
		cfg.builder = model.NewBuilder()
	}

	forms, err := cfg.builder.BuildAll(records)
	if err != nil {
		return nil, fmt.Errorf("openapi: build forms: %w", err)
	}

	info = info.withDefaults()
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       info.Title,
			Version:     info.Version,
			Description: info.Description,
		},
		Paths: openapi3.NewPaths(),
	}

	for _, form := range forms {
		doc.Paths.Set(PathPrefix+form.ID, &openapi3.PathItem{Post: operation(form)})
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

func operation(form model.FormModel) *openapi3.Operation {
	body := openapi3.NewObjectSchema()
	for _, field := range form.Fields {
		prop := openapi3.NewStringSchema()
		prop.Title = field.Label
		prop.Description = field.Placeholder
		if field.Default != "" {
			prop.Default = field.Default
		}
		body.WithProperty(field.Name, prop)
	}

	audience := string(catalog.AudienceEveryone)
	if form.ForDevelopers {
		audience = string(catalog.AudienceDevelopers)
	}

	op := openapi3.NewOperation()
	op.OperationID = form.ID
	op.Summary = form.Title
	op.Description = form.Prompt
	op.Tags = []string{audience}
	op.Extensions = map[string]any{
		ExtensionForDevelopers: form.ForDevelopers,
		ExtensionPrompt:        form.Prompt,
	}
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithDescription("Variable bindings; blank values fall back to defaults.").
			WithJSONSchema(body),
	}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Finalized prompt text.").
				WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{"text/plain"})),
		}),
	)
	return op
}

// Format selects the serialization used by Marshal.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Marshal serializes doc as indented JSON or YAML.
func Marshal(doc *openapi3.T, format Format) ([]byte, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: marshal: %w", err)
	}
	switch format {
	case FormatJSON, "":
		return append(raw, '\n'), nil
	case FormatYAML:
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return nil, fmt.Errorf("openapi: marshal yaml: %w", err)
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("openapi: marshal yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("openapi: unsupported format %q", format)
	}
}

// Load parses and validates a serialized document, JSON or YAML.
func Load(ctx context.Context, raw []byte) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

// Records recovers catalog records from a document produced by Describe.
// Records are ordered by path; operations without the prompt extension are
// skipped.
func Records(doc *openapi3.T) []catalog.Record {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	items := doc.Paths.Map()
	paths := make([]string, 0, len(items))
	for path := range items {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var records []catalog.Record
	for _, path := range paths {
		item := items[path]
		if item == nil || item.Post == nil {
			continue
		}
		op := item.Post
		prompt, _ := op.Extensions[ExtensionPrompt].(string)
		if prompt == "" {
			continue
		}
		forDevs, _ := op.Extensions[ExtensionForDevelopers].(bool)
		records = append(records, catalog.Record{Act: op.Summary, Prompt: prompt, ForDevelopers: forDevs})
	}
	return records
}
