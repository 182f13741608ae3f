package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// stringValue renders a submitted value for emptiness and format checks.
// Numbers arrive as float64 after JSON decoding.
func stringValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// filled reports whether a value counts toward completion: present,
// non-nil, and not a blank string.
func filled(values map[string]interface{}, name string) bool {
	v, ok := values[name]
	if !ok || v == nil {
		return false
	}
	s, isStr := v.(string)
	return !isStr || strings.TrimSpace(s) != ""
}

// visible evaluates a field's conditional display rule against the
// current values. Fields with no DependsOn are always visible.
func visible(f *FormField, values map[string]interface{}) bool {
	if f.DependsOn == "" {
		return true
	}
	actual := strings.TrimSpace(stringValue(values[f.DependsOn]))
	if f.ShowIfEquals != "" {
		return actual == f.ShowIfEquals
	}
	if len(f.ShowIfIn) > 0 {
		for _, want := range f.ShowIfIn {
			if actual == want {
				return true
			}
		}
		return false
	}
	// DependsOn without a condition means "parent has any value".
	return actual != ""
}

// VisibleFields returns the fields of the form that should be shown for
// the given values, in definition order.
func VisibleFields(def *FormDefinition, values map[string]interface{}) []FormField {
	out := make([]FormField, 0, len(def.Fields))
	for i := range def.Fields {
		if visible(&def.Fields[i], values) {
			out = append(out, def.Fields[i])
		}
	}
	return out
}

// Completion reports progress over the required fields currently
// visible: how many are filled, how many there are, and a whole
// percentage. Advisory only; it never gates submission.
func Completion(def *FormDefinition, values map[string]interface{}) (done, total, percent int) {
	for i := range def.Fields {
		if !def.Fields[i].Required || !visible(&def.Fields[i], values) {
			continue
		}
		total++
		if filled(values, def.Fields[i].Name) {
			done++
		}
	}
	if total == 0 {
		return 0, 0, 0
	}
	return done, total, done * 100 / total
}

// FieldError is one validation failure, keyed by field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the values against the form definition. Hidden fields
// are skipped entirely, including their required flag. Values supplied
// for unknown fields are rejected so stray keys never reach storage.
func Validate(def *FormDefinition, values map[string]interface{}) []FieldError {
	var errs []FieldError

	known := make(map[string]*FormField, len(def.Fields))
	for i := range def.Fields {
		known[def.Fields[i].Name] = &def.Fields[i]
	}
	for name := range values {
		if _, ok := known[name]; !ok {
			errs = append(errs, FieldError{Field: name, Message: "unknown field"})
		}
	}

	for i := range def.Fields {
		f := &def.Fields[i]
		if !visible(f, values) {
			continue
		}
		if !filled(values, f.Name) {
			if f.Required {
				errs = append(errs, FieldError{Field: f.Name, Message: f.Label + " is required"})
			}
			continue
		}
		raw := strings.TrimSpace(stringValue(values[f.Name]))
		switch f.Type {
		case FieldDate:
			if _, err := time.Parse(dateLayout, raw); err != nil {
				errs = append(errs, FieldError{Field: f.Name, Message: "must be a date in YYYY-MM-DD format"})
			}
		case FieldNumber:
			if _, err := strconv.ParseFloat(raw, 64); err != nil {
				errs = append(errs, FieldError{Field: f.Name, Message: "must be a number"})
			}
		case FieldSelect:
			ok := false
			for _, opt := range f.Options {
				if raw == opt {
					ok = true
					break
				}
			}
			if !ok {
				errs = append(errs, FieldError{Field: f.Name, Message: "is not one of the allowed options"})
			}
		case FieldText, FieldTextarea, FieldFile:
			// free-form
		}
	}
	return errs
}

// BuildPayload keeps only visible, known fields from the submitted
// values so hidden conditional answers are not persisted.
func BuildPayload(def *FormDefinition, values map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for i := range def.Fields {
		f := &def.Fields[i]
		if !visible(f, values) {
			continue
		}
		if v, ok := values[f.Name]; ok {
			out[f.Name] = v
		}
	}
	return out
}
