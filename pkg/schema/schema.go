package schema

import (
	"fmt"
	"strings"
)

var fieldTypes = map[FieldType]struct{}{
	FieldTypeText:        {},
	FieldTypeNumber:      {},
	FieldTypeSelect:      {},
	FieldTypeMultiSelect: {},
	FieldTypeDate:        {},
	FieldTypeTime:        {},
	FieldTypeDateTime:    {},
	FieldTypeBoolean:     {},
	FieldTypeTextarea:    {},
	FieldTypeURL:         {},
	FieldTypeFile:        {},
}

var dynamicSources = map[DynamicSource]struct{}{
	SourceTeams:         {},
	SourceCompetitions:  {},
	SourceSeasons:       {},
	SourceRecentMatches: {},
}

// Field returns the named field and whether it exists.
func (s Schema) Field(name string) (Field, bool) {
	name = strings.TrimSpace(name)
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Has reports whether the schema declares the named field.
func (s Schema) Has(name string) bool {
	_, ok := s.Field(name)
	return ok
}

// Validate checks schema integrity: non-empty unique field names, known field
// types and dynamic sources, conditional references that resolve within the
// schema, and dynamic-source fields declared without static options.
func (s Schema) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("schema: name is required")
	}
	if len(s.Fields) == 0 {
		return fmt.Errorf("schema %q: at least one field is required", s.Name)
	}

	seen := make(map[string]struct{}, len(s.Fields))
	for _, field := range s.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("schema %q: field name is required", s.Name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("schema %q: duplicate field %q", s.Name, name)
		}
		seen[name] = struct{}{}

		if _, ok := fieldTypes[field.Type]; !ok {
			return fmt.Errorf("schema %q: field %q has unknown type %q", s.Name, name, field.Type)
		}
		if field.DynamicSource != "" {
			if _, ok := dynamicSources[field.DynamicSource]; !ok {
				return fmt.Errorf("schema %q: field %q has unknown dynamic source %q", s.Name, name, field.DynamicSource)
			}
			if len(field.Options) > 0 {
				return fmt.Errorf("schema %q: field %q mixes static options with dynamic source %q", s.Name, name, field.DynamicSource)
			}
		}
		if field.Multiple && field.Type != FieldTypeFile {
			return fmt.Errorf("schema %q: field %q sets multiple on non-file type %q", s.Name, name, field.Type)
		}
		if err := validateConstraints(field); err != nil {
			return fmt.Errorf("schema %q: field %q: %w", s.Name, name, err)
		}
	}

	for _, field := range s.Fields {
		cond := field.Conditional
		if cond == nil {
			continue
		}
		ref := strings.TrimSpace(cond.Field)
		if ref == "" {
			return fmt.Errorf("schema %q: field %q has conditional without a controlling field", s.Name, field.Name)
		}
		if _, ok := seen[ref]; !ok {
			return fmt.Errorf("schema %q: field %q references unknown field %q", s.Name, field.Name, ref)
		}
		if ref == field.Name {
			return fmt.Errorf("schema %q: field %q references itself", s.Name, field.Name)
		}
	}

	return nil
}

func validateConstraints(field Field) error {
	v := field.Validation
	if v == nil {
		return nil
	}
	if wc := v.WordCount; wc != nil {
		if wc.Min < 0 || wc.Max < 0 {
			return fmt.Errorf("word count bounds must be non-negative")
		}
		if wc.Max > 0 && wc.Min > wc.Max {
			return fmt.Errorf("word count min %d exceeds max %d", wc.Min, wc.Max)
		}
	}
	if v.MaxLength < 0 {
		return fmt.Errorf("max length must be non-negative")
	}
	if v.MaxFileSize < 0 {
		return fmt.Errorf("max file size must be non-negative")
	}
	if v.MaxFiles < 0 {
		return fmt.Errorf("max files must be non-negative")
	}
	if field.Type != FieldTypeFile && (len(v.FileTypes) > 0 || v.MaxFileSize > 0 || v.MaxFiles > 0) {
		return fmt.Errorf("file constraints on non-file type %q", field.Type)
	}
	return nil
}
