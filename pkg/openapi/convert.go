// Package openapi derives form schemas from an OpenAPI document. Teams that
// already describe the admin API with OpenAPI can generate entity forms from
// an operation's request body instead of authoring YAML schema documents.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-clubadmin/pkg/schema"
)

// extensionKey carries form hints OpenAPI cannot express natively: dynamic
// option sources, edit-frozen fields and word-count bounds.
const extensionKey = "x-admin-form"

// Converter extracts form schemas from a parsed OpenAPI document.
type Converter struct {
	doc *openapi3.T
}

// Load parses raw OpenAPI (JSON or YAML) into a Converter.
func Load(ctx context.Context, raw []byte) (*Converter, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return &Converter{doc: doc}, nil
}

// FormSchema derives a form schema from the request body of the operation
// with the given operationId. Field order follows the required list first,
// then the remaining properties alphabetically.
func (c *Converter) FormSchema(operationID string) (schema.Schema, error) {
	operation := c.findOperation(operationID)
	if operation == nil {
		return schema.Schema{}, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	body := requestBodySchema(operation)
	if body == nil {
		return schema.Schema{}, fmt.Errorf("openapi: operation %q has no request body schema", operationID)
	}

	doc := schema.Schema{Name: operationID}
	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	for _, name := range orderedProperties(body) {
		property := body.Properties[name]
		if property == nil || property.Value == nil {
			continue
		}
		field, err := convertProperty(name, property.Value, required[name])
		if err != nil {
			return schema.Schema{}, fmt.Errorf("openapi: operation %q: %w", operationID, err)
		}
		doc.Fields = append(doc.Fields, field)
	}

	if err := doc.Validate(); err != nil {
		return schema.Schema{}, fmt.Errorf("openapi: operation %q: %w", operationID, err)
	}
	return doc, nil
}

func (c *Converter) findOperation(operationID string) *openapi3.Operation {
	if c.doc == nil || c.doc.Paths == nil {
		return nil
	}
	for _, item := range c.doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestBodySchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "multipart/form-data", "application/x-www-form-urlencoded"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// orderedProperties yields required property names in declaration order,
// then the rest sorted by name. Go maps would otherwise shuffle the form on
// every generation.
func orderedProperties(body *openapi3.Schema) []string {
	seen := make(map[string]bool, len(body.Properties))
	var names []string
	for _, name := range body.Required {
		if _, ok := body.Properties[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range body.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func convertProperty(name string, property *openapi3.Schema, required bool) (schema.Field, error) {
	field := schema.Field{
		Name:        name,
		Label:       property.Title,
		Placeholder: property.Description,
		Required:    required,
		Default:     property.Default,
	}

	fieldType, err := fieldTypeFor(name, property)
	if err != nil {
		return schema.Field{}, err
	}
	field.Type = fieldType

	if fieldType == schema.FieldTypeFile && isArray(property) {
		field.Multiple = true
	}

	if len(property.Enum) > 0 && fieldType == schema.FieldTypeSelect {
		for _, value := range property.Enum {
			text := fmt.Sprint(value)
			field.Options = append(field.Options, schema.Option{Value: text, Label: text})
		}
	}
	if isArray(property) && property.Items != nil && property.Items.Value != nil {
		if items := property.Items.Value; len(items.Enum) > 0 {
			field.Type = schema.FieldTypeMultiSelect
			field.Options = nil
			for _, value := range items.Enum {
				text := fmt.Sprint(value)
				field.Options = append(field.Options, schema.Option{Value: text, Label: text})
			}
		}
	}

	if property.MaxLength != nil {
		field.Validation = ensureValidation(field.Validation)
		field.Validation.MaxLength = int(*property.MaxLength)
	}

	applyExtension(&field, property.Extensions)
	return field, nil
}

func fieldTypeFor(name string, property *openapi3.Schema) (schema.FieldType, error) {
	if isArray(property) {
		if property.Items != nil && property.Items.Value != nil && property.Items.Value.Format == "binary" {
			return schema.FieldTypeFile, nil
		}
		return schema.FieldTypeMultiSelect, nil
	}

	switch typeName(property) {
	case "string":
		switch property.Format {
		case "date":
			return schema.FieldTypeDate, nil
		case "date-time":
			return schema.FieldTypeDateTime, nil
		case "time":
			return schema.FieldTypeTime, nil
		case "uri", "url":
			return schema.FieldTypeURL, nil
		case "binary":
			return schema.FieldTypeFile, nil
		}
		if len(property.Enum) > 0 {
			return schema.FieldTypeSelect, nil
		}
		if property.MaxLength != nil && *property.MaxLength > 255 {
			return schema.FieldTypeTextarea, nil
		}
		return schema.FieldTypeText, nil
	case "number", "integer":
		return schema.FieldTypeNumber, nil
	case "boolean":
		return schema.FieldTypeBoolean, nil
	case "":
		return schema.FieldTypeText, nil
	default:
		return "", fmt.Errorf("property %q has unsupported type %q", name, typeName(property))
	}
}

func isArray(property *openapi3.Schema) bool {
	return typeName(property) == "array"
}

func typeName(property *openapi3.Schema) string {
	if property.Type == nil {
		return ""
	}
	values := property.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// applyExtension maps the x-admin-form vendor extension onto the field.
// Supported keys: dynamicSource, readOnlyInEdit, textarea, wordCount
// {min,max}, fileTypes, maxFileSize, maxFiles.
func applyExtension(field *schema.Field, extensions map[string]any) {
	raw, ok := extensions[extensionKey]
	if !ok {
		return
	}
	hints, ok := raw.(map[string]any)
	if !ok {
		return
	}

	if source, ok := hints["dynamicSource"].(string); ok && source != "" {
		field.DynamicSource = schema.DynamicSource(source)
		field.Options = nil
	}
	if frozen, ok := hints["readOnlyInEdit"].(bool); ok {
		field.ReadOnlyInEdit = frozen
	}
	if textarea, ok := hints["textarea"].(bool); ok && textarea && field.Type == schema.FieldTypeText {
		field.Type = schema.FieldTypeTextarea
	}
	if wordCount, ok := hints["wordCount"].(map[string]any); ok {
		field.Validation = ensureValidation(field.Validation)
		field.Validation.WordCount = &schema.WordCount{
			Min: intHint(wordCount["min"]),
			Max: intHint(wordCount["max"]),
		}
	}
	if fileTypes, ok := hints["fileTypes"].([]any); ok {
		field.Validation = ensureValidation(field.Validation)
		for _, item := range fileTypes {
			if text, ok := item.(string); ok && strings.TrimSpace(text) != "" {
				field.Validation.FileTypes = append(field.Validation.FileTypes, text)
			}
		}
	}
	if size := intHint(hints["maxFileSize"]); size > 0 {
		field.Validation = ensureValidation(field.Validation)
		field.Validation.MaxFileSize = int64(size)
	}
	if count := intHint(hints["maxFiles"]); count > 0 {
		field.Validation = ensureValidation(field.Validation)
		field.Validation.MaxFiles = count
	}
}

func ensureValidation(validation *schema.Validation) *schema.Validation {
	if validation == nil {
		return &schema.Validation{}
	}
	return validation
}

func intHint(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
