package form

import (
	"github.com/goliatone/go-clubadmin/pkg/schema"
)

// Values is the aggregate form state: field name to current value. Depending
// on the field type a value is a string, bool, float64, []string, FileUpload
// or []FileUpload.
type Values map[string]any

// Clone returns a shallow copy.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// InitialValues builds the starting form state for a schema: the provided
// initial data first, then each field's default where no initial value is
// present.
func InitialValues(doc schema.Schema, initial Values) Values {
	out := make(Values, len(doc.Fields))
	for key, value := range initial {
		out[key] = value
	}
	for _, field := range doc.Fields {
		if _, ok := out[field.Name]; ok {
			continue
		}
		if field.Default != nil {
			out[field.Name] = field.Default
		}
	}
	return out
}

// isEmptyValue mirrors the submit-time required check: missing, nil, or the
// empty string counts as empty. Other typed values (false, 0, empty slices)
// do not.
func isEmptyValue(value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}
