package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-promptcat/pkg/catalog"
)

const (
	columnAct     = "act"
	columnPrompt  = "prompt"
	columnForDevs = "for_devs"
)

func parseCSV(raw []byte, comma rune) ([]catalog.Record, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, []byte("\ufeff"))))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(name, `"`, "")))
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	for _, required := range []string{columnAct, columnPrompt} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", catalog.ErrMissingColumn, required)
		}
	}

	var records []catalog.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		records = append(records, catalog.Record{
			Act:           cell(row, columns, columnAct),
			Prompt:        cell(row, columns, columnPrompt),
			ForDevelopers: catalog.ParseForDevs(cell(row, columns, columnForDevs)),
		})
	}
	return records, nil
}

func cell(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
