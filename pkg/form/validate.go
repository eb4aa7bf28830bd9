package form

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-clubadmin/pkg/schema"
)

// Errors maps field names to a single human-readable message. An empty map
// means the form is valid.
type Errors map[string]string

// Valid reports whether no field carries an error.
func (e Errors) Valid() bool { return len(e) == 0 }

// WordCount counts whitespace-separated tokens: trim, split on whitespace
// runs, drop empty tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Validate runs whole-form validation over the currently visible fields and
// returns a fresh error map. Checks run per field in a fixed priority order
// and the first failure wins: required, word-count minimum, word-count
// maximum, max length, URL format. Fields frozen by edit mode are skipped for
// the required and URL checks.
func Validate(doc schema.Schema, mode Mode, values Values) Errors {
	errs := make(Errors)
	for _, field := range doc.Fields {
		if !Visible(field, values) {
			continue
		}
		if msg := validateField(field, mode, values); msg != "" {
			errs[field.Name] = msg
		}
	}
	return errs
}

func validateField(field schema.Field, mode Mode, values Values) string {
	value, present := values[field.Name]
	frozen := mode == ModeEdit && field.ReadOnlyInEdit
	label := fieldLabel(field)

	if field.Required && !frozen && isEmptyValue(value, present) {
		return fmt.Sprintf("%s is required", label)
	}

	text, isText := value.(string)
	if isText && field.Validation != nil {
		if wc := field.Validation.WordCount; wc != nil {
			count := WordCount(text)
			if count < wc.Min {
				return fmt.Sprintf("%s must be at least %d words", label, wc.Min)
			}
			if wc.Max > 0 && count > wc.Max {
				return fmt.Sprintf("%s must be no more than %d words", label, wc.Max)
			}
		}
		if max := field.Validation.MaxLength; max > 0 && len(text) > max {
			return fmt.Sprintf("%s must be no more than %d characters", label, max)
		}
	}

	if field.Type == schema.FieldTypeURL && !frozen && isText && text != "" {
		if !wellFormedURL(text) {
			return "Please enter a valid URL"
		}
	}

	return ""
}

func wellFormedURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

func fieldLabel(field schema.Field) string {
	if label := strings.TrimSpace(field.Label); label != "" {
		return label
	}
	return field.Name
}
