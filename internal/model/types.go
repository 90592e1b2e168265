package model

// Field is one editable variable extracted from a prompt.
type Field struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Default     string `json:"default,omitempty"`
	Placeholder string `json:"placeholder"`
}

// FormModel is the per-prompt structure renderers consume: the record's text,
// its variables, and a preview rendered with no bindings.
type FormModel struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Prompt        string            `json:"prompt"`
	ForDevelopers bool              `json:"forDevelopers"`
	Preview       string            `json:"preview,omitempty"`
	Fields        []Field           `json:"fields"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// HasVariables reports whether the prompt declares any placeholders.
func (f FormModel) HasVariables() bool {
	return len(f.Fields) > 0
}

// CatalogView is the list-level model: the filtered forms plus the counts
// used for the heading label.
type CatalogView struct {
	Title    string      `json:"title"`
	Label    string      `json:"label"`
	Query    string      `json:"query,omitempty"`
	Audience string      `json:"audience"`
	Total    int         `json:"total"`
	Forms    []FormModel `json:"forms"`
}
