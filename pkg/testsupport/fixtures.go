// Package testsupport holds catalog fixtures and golden helpers shared by the
// package tests.
package testsupport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptcat/pkg/catalog"
	pkgmodel "github.com/goliatone/go-promptcat/pkg/model"
)

// UpdateEnv enables golden rewrites when set to any non-empty value.
const UpdateEnv = "UPDATE_GOLDENS"

// SampleRecords returns a small catalog covering the placeholder shapes the
// renderers care about: no variables, defaults, bare names, and a name
// declared twice with different defaults.
func SampleRecords() []catalog.Record {
	return []catalog.Record{
		{Act: "Linux Terminal", Prompt: "I want you to act as a linux terminal. Reply to ${command:pwd} with terminal output only.", ForDevelopers: true},
		{Act: "Travel Guide", Prompt: "I am in ${city:Istanbul} for ${days} days. Suggest places to visit."},
		{Act: "Debate Coach", Prompt: "Argue ${side:for} then ${side:against} the motion: ${motion}."},
		{Act: "Motivational Coach", Prompt: "Give me a pep talk for today."},
	}
}

// MustLoadFormModel decodes a JSON golden into a FormModel.
func MustLoadFormModel(t *testing.T, path string) pkgmodel.FormModel {
	t.Helper()

	var form pkgmodel.FormModel
	if err := json.Unmarshal(MustReadGolden(t, path), &form); err != nil {
		t.Fatalf("decode form model %s: %v", path, err)
	}
	return form
}

// WriteFormModel rewrites a form model golden when UpdateEnv is set.
func WriteFormModel(t *testing.T, path string, form pkgmodel.FormModel) {
	t.Helper()

	payload, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		t.Fatalf("encode form model: %v", err)
	}
	WriteMaybeGolden(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden writes data to path when UpdateEnv is set and reports
// whether it did.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()

	if os.Getenv(UpdateEnv) == "" {
		return false
	}
	if err := writeFile(path, data); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureTemplateOutput runs render against a buffer and returns both the
// returned string and what was written.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("testsupport: mkdir %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, data, 0o644)
}
