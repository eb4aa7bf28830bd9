package html

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-clubadmin/pkg/form"
	"github.com/goliatone/go-clubadmin/pkg/schema"
)

// RenderField builds the wrapper, label, control and error markup for one
// field. The frozen flag disables the control without removing it, so edit
// screens still show the fixture data they cannot change.
func RenderField(field schema.Field, value any, errMsg string, frozen bool) string {
	var builder strings.Builder
	builder.Grow(512)

	builder.WriteString(`<div class="form-field form-field--`)
	builder.WriteString(string(field.Type))
	if errMsg != "" {
		builder.WriteString(` form-field--invalid`)
	}
	builder.WriteString(`" data-field="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`">` + "\n")

	if label := strings.TrimSpace(field.Label); label != "" && field.Type != schema.FieldTypeBoolean {
		builder.WriteString(`    <label for="fld-`)
		builder.WriteString(html.EscapeString(field.Name))
		builder.WriteString(`" class="form-field__label">`)
		builder.WriteString(html.EscapeString(label))
		if field.Required {
			builder.WriteString(` *`)
		}
		builder.WriteString("</label>\n")
	}

	for _, line := range strings.Split(controlMarkup(field, value, frozen), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		builder.WriteString("    ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	if field.Type == schema.FieldTypeTextarea && wordBounds(field) != nil {
		count := form.WordCount(stringify(value))
		builder.WriteString(`    <small class="form-field__word-count" data-word-count-for="`)
		builder.WriteString(html.EscapeString(field.Name))
		builder.WriteString(`">`)
		builder.WriteString(strconv.Itoa(count))
		builder.WriteString(" words</small>\n")
	}

	if errMsg != "" {
		builder.WriteString(`    <p class="form-field__error" role="alert">`)
		builder.WriteString(html.EscapeString(errMsg))
		builder.WriteString("</p>\n")
	}

	builder.WriteString("</div>\n")
	return builder.String()
}

func controlMarkup(field schema.Field, value any, frozen bool) string {
	switch field.Type {
	case schema.FieldTypeSelect, schema.FieldTypeMultiSelect:
		return selectMarkup(field, value, frozen)
	case schema.FieldTypeTextarea:
		return textareaMarkup(field, value, frozen)
	case schema.FieldTypeBoolean:
		return checkboxMarkup(field, value, frozen)
	case schema.FieldTypeFile:
		return fileMarkup(field, frozen)
	default:
		return inputMarkup(field, value, frozen)
	}
}

var inputTypes = map[schema.FieldType]string{
	schema.FieldTypeText:     "text",
	schema.FieldTypeNumber:   "number",
	schema.FieldTypeDate:     "date",
	schema.FieldTypeTime:     "time",
	schema.FieldTypeDateTime: "datetime-local",
	schema.FieldTypeURL:      "url",
}

func inputMarkup(field schema.Field, value any, frozen bool) string {
	inputType, ok := inputTypes[field.Type]
	if !ok {
		inputType = "text"
	}

	var builder strings.Builder
	builder.WriteString(`<input type="`)
	builder.WriteString(inputType)
	builder.WriteString(`" id="fld-`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" class="form-field__control"`)
	if text := stringify(value); text != "" {
		builder.WriteString(` value="`)
		builder.WriteString(html.EscapeString(text))
		builder.WriteString(`"`)
	}
	if field.Placeholder != "" {
		builder.WriteString(` placeholder="`)
		builder.WriteString(html.EscapeString(field.Placeholder))
		builder.WriteString(`"`)
	}
	if field.Validation != nil && field.Validation.MaxLength > 0 {
		builder.WriteString(` maxlength="`)
		builder.WriteString(strconv.Itoa(field.Validation.MaxLength))
		builder.WriteString(`"`)
	}
	writeCommonAttrs(&builder, field, frozen)
	builder.WriteString(">")
	return builder.String()
}

func textareaMarkup(field schema.Field, value any, frozen bool) string {
	var builder strings.Builder
	builder.WriteString(`<textarea id="fld-`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" class="form-field__control" rows="6"`)
	if field.Placeholder != "" {
		builder.WriteString(` placeholder="`)
		builder.WriteString(html.EscapeString(field.Placeholder))
		builder.WriteString(`"`)
	}
	if bounds := wordBounds(field); bounds != nil {
		if bounds.Min > 0 {
			builder.WriteString(` data-word-min="`)
			builder.WriteString(strconv.Itoa(bounds.Min))
			builder.WriteString(`"`)
		}
		if bounds.Max > 0 {
			builder.WriteString(` data-word-max="`)
			builder.WriteString(strconv.Itoa(bounds.Max))
			builder.WriteString(`"`)
		}
	}
	if field.Validation != nil && field.Validation.MaxLength > 0 {
		builder.WriteString(` maxlength="`)
		builder.WriteString(strconv.Itoa(field.Validation.MaxLength))
		builder.WriteString(`"`)
	}
	writeCommonAttrs(&builder, field, frozen)
	builder.WriteString(">")
	builder.WriteString(html.EscapeString(stringify(value)))
	builder.WriteString("</textarea>")
	return builder.String()
}

func selectMarkup(field schema.Field, value any, frozen bool) string {
	selected := selectedValues(value)

	var builder strings.Builder
	builder.WriteString(`<select id="fld-`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" class="form-field__control"`)
	if field.Type == schema.FieldTypeMultiSelect {
		builder.WriteString(` multiple`)
	}
	if field.DynamicSource != "" {
		builder.WriteString(` data-source="`)
		builder.WriteString(html.EscapeString(string(field.DynamicSource)))
		builder.WriteString(`"`)
	}
	writeCommonAttrs(&builder, field, frozen)
	builder.WriteString(">\n")

	if field.Type == schema.FieldTypeSelect {
		placeholder := field.Placeholder
		if placeholder == "" {
			placeholder = "Select..."
		}
		builder.WriteString(`    <option value="">`)
		builder.WriteString(html.EscapeString(placeholder))
		builder.WriteString("</option>\n")
	}

	for _, option := range field.Options {
		builder.WriteString(`    <option value="`)
		builder.WriteString(html.EscapeString(option.Value))
		builder.WriteString(`"`)
		if selected[option.Value] {
			builder.WriteString(` selected`)
		}
		builder.WriteString(`>`)
		builder.WriteString(html.EscapeString(option.Label))
		builder.WriteString("</option>\n")
	}

	builder.WriteString("</select>")
	return builder.String()
}

func checkboxMarkup(field schema.Field, value any, frozen bool) string {
	var builder strings.Builder
	builder.WriteString(`<label class="form-field__checkbox"><input type="checkbox" id="fld-`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" value="true"`)
	if isTruthy(value) {
		builder.WriteString(` checked`)
	}
	writeCommonAttrs(&builder, field, frozen)
	builder.WriteString("> ")
	label := field.Label
	if label == "" {
		label = field.Name
	}
	builder.WriteString(html.EscapeString(label))
	builder.WriteString("</label>")
	return builder.String()
}

func fileMarkup(field schema.Field, frozen bool) string {
	var builder strings.Builder
	builder.WriteString(`<input type="file" id="fld-`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" class="form-field__control"`)
	if field.Multiple {
		builder.WriteString(` multiple`)
	}
	if field.Validation != nil && len(field.Validation.FileTypes) > 0 {
		builder.WriteString(` accept="`)
		builder.WriteString(html.EscapeString(strings.Join(field.Validation.FileTypes, ",")))
		builder.WriteString(`"`)
	}
	if field.Validation != nil && field.Validation.MaxFiles > 0 {
		builder.WriteString(` data-max-files="`)
		builder.WriteString(strconv.Itoa(field.Validation.MaxFiles))
		builder.WriteString(`"`)
	}
	writeCommonAttrs(&builder, field, frozen)
	builder.WriteString(">")
	return builder.String()
}

func writeCommonAttrs(builder *strings.Builder, field schema.Field, frozen bool) {
	if field.Required {
		builder.WriteString(` required`)
	}
	if frozen {
		builder.WriteString(` disabled data-frozen="true"`)
	}
}

func wordBounds(field schema.Field) *schema.WordCount {
	if field.Validation == nil {
		return nil
	}
	return field.Validation.WordCount
}

func selectedValues(value any) map[string]bool {
	selected := make(map[string]bool)
	switch v := value.(type) {
	case nil:
	case []string:
		for _, item := range v {
			selected[item] = true
		}
	case []any:
		for _, item := range v {
			selected[stringify(item)] = true
		}
	default:
		if text := stringify(v); text != "" {
			selected[text] = true
		}
	}
	return selected
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

func isTruthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1"
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}
