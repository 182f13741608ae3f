// Package forms holds the static catalog of ethics-submission form
// definitions and the engine that validates and assembles submissions
// against them.
package forms

// FieldType is the closed set of input variants a form field can take.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldDate     FieldType = "date"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldFile     FieldType = "file"
)

// FormField is one entry in a form definition. Type selects the input
// variant; Options only applies to select fields, Rows to textareas.
// DependsOn/ShowIfEquals/ShowIfIn express conditional visibility against
// the value of another field.
type FormField struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Help        string    `json:"help,omitempty"`
	Rows        int       `json:"rows,omitempty"`

	DependsOn    string   `json:"depends_on,omitempty"`
	ShowIfEquals string   `json:"show_if_equals,omitempty"`
	ShowIfIn     []string `json:"show_if_in,omitempty"`
}

// FormDefinition is a catalog entry: an ordered field list plus display
// metadata.
type FormDefinition struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	SubmitLabel string      `json:"submit_label,omitempty"`
	Fields      []FormField `json:"fields"`
}

// Lookup returns the catalog form with the given id.
func Lookup(id string) (*FormDefinition, bool) {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i], true
		}
	}
	return nil, false
}

// Categories returns the distinct category names in catalog order.
// Forms without a category fall under "General".
func Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, f := range Catalog {
		cat := f.Category
		if cat == "" {
			cat = "General"
		}
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out
}
