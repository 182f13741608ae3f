package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	def, ok := Lookup("rec-fo-0021-rne")
	require.True(t, ok)
	require.Equal(t, "Report of New Event (RNE)", def.Title)

	_, ok = Lookup("no-such-form")
	require.False(t, ok)
}

func TestCatalogConditionalFieldsWellFormed(t *testing.T) {
	for _, def := range Catalog {
		names := make(map[string]bool)
		for _, f := range def.Fields {
			require.Falsef(t, names[f.Name], "%s: duplicate field %s", def.ID, f.Name)
			names[f.Name] = true
		}
		for _, f := range def.Fields {
			if f.DependsOn != "" {
				require.Truef(t, names[f.DependsOn], "%s: %s depends on missing field %s", def.ID, f.Name, f.DependsOn)
			}
		}
	}
}

func TestVisibleFieldsConditional(t *testing.T) {
	def, ok := Lookup("rec-fo-0021-rne")
	require.True(t, ok)

	contains := func(fields []FormField, name string) bool {
		for _, f := range fields {
			if f.Name == name {
				return true
			}
		}
		return false
	}

	// Hidden until the parent select takes the triggering value.
	fields := VisibleFields(def, map[string]interface{}{})
	require.False(t, contains(fields, "other_event_type"))

	fields = VisibleFields(def, map[string]interface{}{"event_type": "Protocol Deviation"})
	require.False(t, contains(fields, "other_event_type"))

	fields = VisibleFields(def, map[string]interface{}{"event_type": "Other"})
	require.True(t, contains(fields, "other_event_type"))
}

func TestCompletionCountsRequiredVisibleFields(t *testing.T) {
	def := &FormDefinition{
		ID: "t",
		Fields: []FormField{
			{Name: "a", Type: FieldText, Required: true},
			{Name: "b", Type: FieldSelect, Required: true, Options: []string{"x", "Other"}},
			{Name: "opt", Type: FieldText},
			{Name: "c", Type: FieldText, Required: true, DependsOn: "b", ShowIfEquals: "Other"},
		},
	}

	done, total, pct := Completion(def, map[string]interface{}{})
	require.Equal(t, 0, done)
	require.Equal(t, 2, total)
	require.Equal(t, 0, pct)

	// Optional fields never enter the denominator.
	done, total, pct = Completion(def, map[string]interface{}{"a": "hi", "b": "x", "opt": "extra"})
	require.Equal(t, 2, done)
	require.Equal(t, 2, total)
	require.Equal(t, 100, pct)

	// Choosing "Other" reveals c, lowering the percentage until it is filled.
	done, total, pct = Completion(def, map[string]interface{}{"a": "hi", "b": "Other"})
	require.Equal(t, 2, done)
	require.Equal(t, 3, total)
	require.Equal(t, 66, pct)
}

func TestCompletionBlankStringsDoNotCount(t *testing.T) {
	def := &FormDefinition{Fields: []FormField{{Name: "a", Type: FieldText, Required: true}}}
	done, _, _ := Completion(def, map[string]interface{}{"a": "   "})
	require.Equal(t, 0, done)
}

func TestValidateRequiredAndTypes(t *testing.T) {
	def, ok := Lookup("early-study-termination")
	require.True(t, ok)

	errs := Validate(def, map[string]interface{}{})
	require.NotEmpty(t, errs)
	fieldSet := make(map[string]bool)
	for _, e := range errs {
		fieldSet[e.Field] = true
	}
	require.True(t, fieldSet["protocol_title"])
	require.True(t, fieldSet["reason_for_termination"])
	// Hidden conditional field is not required while its trigger is unset.
	require.False(t, fieldSet["other_reason_detail"])

	errs = Validate(def, map[string]interface{}{
		"termination_request_date":    "not-a-date",
		"enrolled_participants_total": "twelve",
		"reason_for_termination":      "Bad Option",
	})
	byField := make(map[string]string)
	for _, e := range errs {
		byField[e.Field] = e.Message
	}
	require.Contains(t, byField["termination_request_date"], "YYYY-MM-DD")
	require.Contains(t, byField["enrolled_participants_total"], "number")
	require.Contains(t, byField["reason_for_termination"], "allowed options")
}

func TestValidateRejectsUnknownFields(t *testing.T) {
	def, ok := Lookup("progress-report")
	require.True(t, ok)
	errs := Validate(def, map[string]interface{}{"bogus": "x"})
	found := false
	for _, e := range errs {
		if e.Field == "bogus" {
			found = true
		}
	}
	require.True(t, found)
}

func TestValidateNumberFromJSONFloat(t *testing.T) {
	def := &FormDefinition{Fields: []FormField{{Name: "n", Type: FieldNumber, Required: true}}}
	errs := Validate(def, map[string]interface{}{"n": float64(42)})
	require.Empty(t, errs)
}

func TestBuildPayloadDropsHiddenAnswers(t *testing.T) {
	def, ok := Lookup("rec-fo-0021-rne")
	require.True(t, ok)

	// The user picked "Other", typed a detail, then switched back.
	values := map[string]interface{}{
		"event_type":       "Adverse Event",
		"other_event_type": "stale answer",
		"protocol_title":   "Study X",
	}
	payload := BuildPayload(def, values)
	require.NotContains(t, payload, "other_event_type")
	require.Equal(t, "Study X", payload["protocol_title"])
}
