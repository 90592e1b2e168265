package openapi_test

import (
	"context"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptcat/pkg/catalog"
	"github.com/goliatone/go-promptcat/pkg/openapi"
	"github.com/goliatone/go-promptcat/pkg/testsupport"
)

func TestDescribe(t *testing.T) {
	doc, err := openapi.Describe(context.Background(), testsupport.SampleRecords(), openapi.Info{Title: "Samples"})
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if doc.Info.Title != "Samples" || doc.Info.Version != "1.0.0" {
		t.Fatalf("unexpected info %+v", doc.Info)
	}
	if got := doc.Paths.Len(); got != 4 {
		t.Fatalf("expected 4 paths, got %d", got)
	}

	item := doc.Paths.Value("/prompts/travel-guide")
	if item == nil || item.Post == nil {
		t.Fatalf("expected POST /prompts/travel-guide")
	}
	op := item.Post
	if op.OperationID != "travel-guide" || op.Summary != "Travel Guide" {
		t.Fatalf("unexpected operation %s/%s", op.OperationID, op.Summary)
	}
	if diff := cmp.Diff([]string{"everyone"}, op.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}

	schema := op.RequestBody.Value.Content.Get("application/json").Schema.Value
	city := schema.Properties["city"].Value
	if city.Default != "Istanbul" {
		t.Fatalf("expected city default Istanbul, got %v", city.Default)
	}
	if days := schema.Properties["days"].Value; days.Default != nil {
		t.Fatalf("expected no default for days, got %v", days.Default)
	}
	if len(schema.Required) != 0 {
		t.Fatalf("variables should be optional, got %v", schema.Required)
	}

	resp := op.Responses.Status(200)
	if resp == nil || resp.Value.Content.Get("text/plain") == nil {
		t.Fatalf("expected text/plain 200 response")
	}
}

func TestDescribeDeveloperPromptsAndDuplicateNames(t *testing.T) {
	records := []catalog.Record{
		{Act: "Linux Terminal", Prompt: "Run ${command:pwd}", ForDevelopers: true},
		{Act: "Debate Coach", Prompt: "Argue ${side:for} then ${side:against}."},
	}
	doc, err := openapi.Describe(context.Background(), records, openapi.Info{})
	if err != nil {
		t.Fatalf("describe: %v", err)
	}

	linux := doc.Paths.Value("/prompts/linux-terminal").Post
	if diff := cmp.Diff([]string{"developers"}, linux.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if linux.Extensions[openapi.ExtensionForDevelopers] != true {
		t.Fatalf("expected developer extension")
	}

	debate := doc.Paths.Value("/prompts/debate-coach").Post
	props := debate.RequestBody.Value.Content.Get("application/json").Schema.Value.Properties
	if len(props) != 1 {
		t.Fatalf("expected one property for repeated name, got %d", len(props))
	}
	if got := props["side"].Value.Default; got != "for" {
		t.Fatalf("expected first declared default, got %v", got)
	}
}

func TestMarshalAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	doc, err := openapi.Describe(ctx, testsupport.SampleRecords(), openapi.Info{})
	if err != nil {
		t.Fatalf("describe: %v", err)
	}

	for _, format := range []openapi.Format{openapi.FormatJSON, openapi.FormatYAML} {
		raw, err := openapi.Marshal(doc, format)
		if err != nil {
			t.Fatalf("marshal %s: %v", format, err)
		}
		loaded, err := openapi.Load(ctx, raw)
		if err != nil {
			t.Fatalf("load %s: %v", format, err)
		}
		got := openapi.Records(loaded)
		want := []catalog.Record{
			testsupport.SampleRecords()[2],
			testsupport.SampleRecords()[0],
			testsupport.SampleRecords()[3],
			testsupport.SampleRecords()[1],
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%s records mismatch (-want +got):\n%s", format, diff)
		}
	}

	if _, err := openapi.Marshal(doc, "toml"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestRecordsSkipsForeignOperations(t *testing.T) {
	doc := &openapi3.T{Paths: openapi3.NewPaths()}
	doc.Paths.Set("/other", &openapi3.PathItem{Post: openapi3.NewOperation()})
	if got := openapi.Records(doc); len(got) != 0 {
		t.Fatalf("expected no records, got %v", got)
	}
	if got := openapi.Records(nil); got != nil {
		t.Fatalf("expected nil for nil doc")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	if _, err := openapi.Load(context.Background(), []byte("not: [valid")); err == nil || !strings.Contains(err.Error(), "openapi: load document") {
		t.Fatalf("expected load error, got %v", err)
	}
}
