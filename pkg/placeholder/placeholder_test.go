package placeholder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptcat/pkg/placeholder"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []placeholder.Spec
	}{
		{name: "empty input", text: "", want: nil},
		{name: "single bare", text: "Hi ${name}", want: []placeholder.Spec{{Name: "name", Default: ""}}},
		{
			name: "identical pairs collapse",
			text: "${city:Paris} and ${city:Paris}",
			want: []placeholder.Spec{{Name: "city", Default: "Paris"}},
		},
		{
			name: "same name different defaults",
			text: "${city:Paris} vs ${city:London}",
			want: []placeholder.Spec{
				{Name: "city", Default: "Paris"},
				{Name: "city", Default: "London"},
			},
		},
		{
			name: "first occurrence order",
			text: "${b} ${a:1} ${b} ${c}",
			want: []placeholder.Spec{{Name: "b"}, {Name: "a", Default: "1"}, {Name: "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, placeholder.Extract(tt.text)); diff != "" {
				t.Fatalf("Extract mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	text := "I want you to act as a ${role:guide} in ${city:Paris}. Start with ${role}."
	first := placeholder.Extract(text)
	second := placeholder.Extract(text)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Extract not idempotent (-first +second):\n%s", diff)
	}
}

func TestNamesAndLookup(t *testing.T) {
	specs := placeholder.Extract("${city:Paris} vs ${city:London} on ${day}")

	if diff := cmp.Diff([]string{"city", "day"}, placeholder.Names(specs)); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}

	spec, ok := placeholder.Lookup(specs, "city")
	if !ok || spec.Default != "Paris" {
		t.Fatalf("Lookup(city) = %+v, %v; want first default Paris", spec, ok)
	}
	if _, ok := placeholder.Lookup(specs, "missing"); ok {
		t.Fatalf("Lookup(missing) reported a match")
	}
}
