package schema

// FieldType is the closed set of input kinds the admin console understands.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeNumber      FieldType = "number"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multiselect"
	FieldTypeDate        FieldType = "date"
	FieldTypeTime        FieldType = "time"
	FieldTypeDateTime    FieldType = "datetime"
	FieldTypeBoolean     FieldType = "boolean"
	FieldTypeTextarea    FieldType = "textarea"
	FieldTypeURL         FieldType = "url"
	FieldTypeFile        FieldType = "file"
)

// DynamicSource tags a field whose options come from a remote lookup rather
// than the schema document. Tagged fields start with empty options and must be
// populated (see pkg/lookup) before they render meaningful choices.
type DynamicSource string

const (
	SourceTeams         DynamicSource = "teams"
	SourceCompetitions  DynamicSource = "competitions"
	SourceSeasons       DynamicSource = "seasons"
	SourceRecentMatches DynamicSource = "recent-matches"
)

// Operator compares a controlling field's current value against a conditional
// rule value.
type Operator string

const (
	OpEquals      Operator = "equals"
	OpNotEquals   Operator = "not_equals"
	OpIncludes    Operator = "includes"
	OpGreaterThan Operator = "greater_than"
	OpLessThan    Operator = "less_than"
)

// Option is a single selectable choice. Recent-match options carry fixture
// metadata consumed by title and folder-name derivation.
type Option struct {
	Value     string `json:"value" yaml:"value"`
	Label     string `json:"label" yaml:"label"`
	MatchDate string `json:"matchDate,omitempty" yaml:"matchDate,omitempty"`
	HomeTeam  string `json:"homeTeam,omitempty" yaml:"homeTeam,omitempty"`
	AwayTeam  string `json:"awayTeam,omitempty" yaml:"awayTeam,omitempty"`
}

// WordCount bounds the number of whitespace-separated tokens in a text value.
type WordCount struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Validation captures the per-field constraints the form controller enforces.
// File constraints apply at selection time; the rest at submit time.
type Validation struct {
	WordCount   *WordCount `json:"wordCount,omitempty" yaml:"wordCount,omitempty"`
	MaxLength   int        `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	FileTypes   []string   `json:"fileTypes,omitempty" yaml:"fileTypes,omitempty"`
	MaxFileSize int64      `json:"maxFileSize,omitempty" yaml:"maxFileSize,omitempty"`
	MaxFiles    int        `json:"maxFiles,omitempty" yaml:"maxFiles,omitempty"`
}

// Conditional gates a field's visibility on another field's current value.
type Conditional struct {
	Field    string   `json:"field" yaml:"field"`
	Value    any      `json:"value" yaml:"value"`
	Operator Operator `json:"operator" yaml:"operator"`
}

// Field describes one form input. Struct fields are annotated so schemas can
// be serialised to JSON snapshots or authored as YAML documents.
type Field struct {
	Name           string        `json:"name" yaml:"name"`
	Type           FieldType     `json:"type" yaml:"type"`
	Label          string        `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder    string        `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required       bool          `json:"required,omitempty" yaml:"required,omitempty"`
	Default        any           `json:"default,omitempty" yaml:"default,omitempty"`
	Options        []Option      `json:"options,omitempty" yaml:"options,omitempty"`
	DynamicSource  DynamicSource `json:"dynamicSource,omitempty" yaml:"dynamicSource,omitempty"`
	ReadOnlyInEdit bool          `json:"readOnlyInEdit,omitempty" yaml:"readOnlyInEdit,omitempty"`
	Multiple       bool          `json:"multiple,omitempty" yaml:"multiple,omitempty"`
	Validation     *Validation   `json:"validation,omitempty" yaml:"validation,omitempty"`
	Conditional    *Conditional  `json:"conditional,omitempty" yaml:"conditional,omitempty"`
}

// Schema is the ordered field list for one entity's form.
type Schema struct {
	Name   string  `json:"name" yaml:"name"`
	Fields []Field `json:"fields" yaml:"fields"`
}
