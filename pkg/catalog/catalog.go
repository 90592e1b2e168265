package catalog

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Catalog is an immutable, ordered set of records.
type Catalog struct {
	records []Record
}

// New builds a catalog from records, dropping entries without an act or a
// prompt.
func New(records []Record) *Catalog {
	kept := make([]Record, 0, len(records))
	for _, record := range records {
		if record.Valid() {
			kept = append(kept, record)
		}
	}
	return &Catalog{records: kept}
}

// Records returns a copy of the records in catalog order.
func (c *Catalog) Records() []Record {
	if c == nil {
		return nil
	}
	return append([]Record(nil), c.records...)
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Find returns the first record whose act matches, ignoring case and
// surrounding whitespace.
func (c *Catalog) Find(act string) (Record, error) {
	want := strings.TrimSpace(act)
	for _, record := range c.Records() {
		if strings.EqualFold(strings.TrimSpace(record.Act), want) {
			return record, nil
		}
	}
	return Record{}, fmt.Errorf("%w: %q", ErrNotFound, act)
}

// FilterAudience keeps developer prompts only for AudienceDevelopers. Any
// other audience keeps every record.
func (c *Catalog) FilterAudience(audience Audience) *Catalog {
	if audience != AudienceDevelopers {
		return &Catalog{records: c.Records()}
	}
	kept := make([]Record, 0, c.Len())
	for _, record := range c.Records() {
		if record.ForDevelopers {
			kept = append(kept, record)
		}
	}
	return &Catalog{records: kept}
}

// Search keeps records whose act or prompt contains term, ignoring case. A
// blank term keeps every record.
func (c *Catalog) Search(term string) *Catalog {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return &Catalog{records: c.Records()}
	}
	kept := make([]Record, 0)
	for _, record := range c.Records() {
		if strings.Contains(strings.ToLower(record.Act), needle) ||
			strings.Contains(strings.ToLower(record.Prompt), needle) {
			kept = append(kept, record)
		}
	}
	return &Catalog{records: kept}
}

// FuzzySearch ranks records by fuzzy match of term against their act, best
// match first. A blank term keeps every record in catalog order.
func (c *Catalog) FuzzySearch(term string) *Catalog {
	term = strings.TrimSpace(term)
	if term == "" {
		return &Catalog{records: c.Records()}
	}
	records := c.Records()
	matches := fuzzy.FindFrom(term, acts(records))
	kept := make([]Record, 0, len(matches))
	for _, match := range matches {
		kept = append(kept, records[match.Index])
	}
	return &Catalog{records: kept}
}

type acts []Record

func (a acts) String(i int) string { return a[i].Act }
func (a acts) Len() int            { return len(a) }

// CountLabel renders the heading shown above a filtered list.
func CountLabel(filtered, total int) string {
	if filtered < total {
		return fmt.Sprintf("Found %d of %d", filtered, total)
	}
	return "All Prompts"
}
