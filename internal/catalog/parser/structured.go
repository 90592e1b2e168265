package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-promptcat/pkg/catalog"
)

// entry mirrors a record in YAML/JSON catalogs. for_devs accepts booleans or
// the CSV string form.
type entry struct {
	Act     string `json:"act" yaml:"act"`
	Prompt  string `json:"prompt" yaml:"prompt"`
	ForDevs any    `json:"for_devs" yaml:"for_devs"`
}

// envelope allows catalogs wrapped in a top-level prompts key.
type envelope struct {
	Prompts []entry `json:"prompts" yaml:"prompts"`
}

func parseYAML(raw []byte) ([]catalog.Record, error) {
	var list []entry
	if err := yaml.Unmarshal(raw, &list); err == nil {
		return toRecords(list), nil
	}
	var wrapped envelope
	if err := yaml.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	return toRecords(wrapped.Prompts), nil
}

func parseJSON(raw []byte) ([]catalog.Record, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var list []entry
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		return toRecords(list), nil
	}
	var wrapped envelope
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	return toRecords(wrapped.Prompts), nil
}

func toRecords(entries []entry) []catalog.Record {
	records := make([]catalog.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, catalog.Record{
			Act:           strings.TrimSpace(e.Act),
			Prompt:        strings.TrimSpace(e.Prompt),
			ForDevelopers: forDevs(e.ForDevs),
		})
	}
	return records
}

func forDevs(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return catalog.ParseForDevs(v)
	case nil:
		return false
	default:
		return catalog.ParseForDevs(fmt.Sprint(v))
	}
}
