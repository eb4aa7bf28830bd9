package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-clubadmin/pkg/schema"
)

// Visible reports whether a field should be rendered and validated given the
// current form state. Fields without a conditional are always visible; an
// unknown operator fails open so a stale schema never hides data entry.
func Visible(field schema.Field, values Values) bool {
	cond := field.Conditional
	if cond == nil {
		return true
	}

	current, ok := values[cond.Field]
	if !ok {
		current = nil
	}

	switch cond.Operator {
	case schema.OpEquals:
		return looseEqual(current, cond.Value)
	case schema.OpNotEquals:
		return !looseEqual(current, cond.Value)
	case schema.OpIncludes:
		return includes(current, cond.Value)
	case schema.OpGreaterThan:
		got, gotOK := coerceNumber(current)
		want, wantOK := coerceNumber(cond.Value)
		return gotOK && wantOK && got > want
	case schema.OpLessThan:
		got, gotOK := coerceNumber(current)
		want, wantOK := coerceNumber(cond.Value)
		return gotOK && wantOK && got < want
	default:
		return true
	}
}

// VisibleFields filters a schema down to the fields visible for the given
// state, preserving declaration order.
func VisibleFields(doc schema.Schema, values Values) []schema.Field {
	out := make([]schema.Field, 0, len(doc.Fields))
	for _, field := range doc.Fields {
		if Visible(field, values) {
			out = append(out, field)
		}
	}
	return out
}

func looseEqual(got, want any) bool {
	if got == nil && want == nil {
		return true
	}
	if b, ok := want.(bool); ok {
		gotBool, valid := coerceBool(got)
		return valid && gotBool == b
	}
	if wantNum, ok := coerceNumber(want); ok {
		if gotNum, valid := coerceNumber(got); valid {
			return gotNum == wantNum
		}
	}
	return coerceString(got) == coerceString(want)
}

func includes(got, want any) bool {
	target := coerceString(want)
	switch v := got.(type) {
	case []string:
		for _, item := range v {
			if item == target {
				return true
			}
		}
	case []any:
		for _, item := range v {
			if coerceString(item) == target {
				return true
			}
		}
	}
	return false
}

func coerceBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, false
		}
		return parsed, true
	default:
		return false, false
	}
}

func coerceNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func coerceString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(value)
	}
}
