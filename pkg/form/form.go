package form

import (
	"fmt"

	"github.com/goliatone/go-clubadmin/pkg/schema"
)

// Mode selects the CRUD flavour a form instance operates in.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeDelete Mode = "delete"
)

// matchIDField is the field whose selection drives title and folder-name
// derivation for match reports and galleries.
const matchIDField = "matchId"

// Form owns the aggregate state for one mounted form instance: current
// values, the last computed error map, and the derivation hook. Instances are
// not safe for concurrent use; each belongs to a single interaction flow.
type Form struct {
	doc    schema.Schema
	mode   Mode
	values Values
	errors Errors
}

// New constructs a form for the schema in the given mode, seeding state from
// initialData merged with field defaults.
func New(doc schema.Schema, mode Mode, initialData Values) (*Form, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	switch mode {
	case ModeCreate, ModeEdit, ModeDelete:
	default:
		return nil, fmt.Errorf("form: unknown mode %q", mode)
	}
	return &Form{
		doc:    doc,
		mode:   mode,
		values: InitialValues(doc, initialData),
		errors: make(Errors),
	}, nil
}

// Schema returns the schema the form renders.
func (f *Form) Schema() schema.Schema { return f.doc }

// Mode returns the form's CRUD mode.
func (f *Form) Mode() Mode { return f.mode }

// Value returns the current value for a field.
func (f *Form) Value(name string) (any, bool) {
	value, ok := f.values[name]
	return value, ok
}

// Values returns a copy of the full form state. Hidden-field values are
// included: submission payloads are not filtered to visible fields.
func (f *Form) Values() Values { return f.values.Clone() }

// Errors returns the error map from the last Validate call.
func (f *Form) Errors() Errors { return f.errors }

// Visible reports whether the named field is currently visible.
func (f *Form) Visible(name string) bool {
	field, ok := f.doc.Field(name)
	if !ok {
		return false
	}
	return Visible(field, f.values)
}

// Set updates a field value, clears that field's displayed error, and re-runs
// derivation when the match selector changes in create mode. Frozen fields
// reject changes in edit mode.
func (f *Form) Set(name string, value any) error {
	field, ok := f.doc.Field(name)
	if !ok {
		return fmt.Errorf("form: unknown field %q", name)
	}
	if f.mode == ModeEdit && field.ReadOnlyInEdit {
		return fmt.Errorf("form: field %q is read-only in edit mode", name)
	}

	f.values[name] = value
	delete(f.errors, name)

	if name == matchIDField && f.mode == ModeCreate {
		f.deriveFromMatch(field, value)
	}
	return nil
}

// SetFile validates and stores a single file selection. A nil file removes
// the current one.
func (f *Form) SetFile(name string, file *FileUpload) error {
	field, ok := f.doc.Field(name)
	if !ok {
		return fmt.Errorf("form: unknown field %q", name)
	}
	if field.Type != schema.FieldTypeFile {
		return fmt.Errorf("form: field %q is not a file field", name)
	}
	if file == nil {
		delete(f.values, name)
		delete(f.errors, name)
		return nil
	}
	if err := CheckFile(field, *file); err != nil {
		return err
	}
	f.values[name] = *file
	delete(f.errors, name)
	return nil
}

// SetFiles validates and stores a multi-file selection atomically: if any
// file in the batch violates a constraint, none are stored.
func (f *Form) SetFiles(name string, files []FileUpload) error {
	field, ok := f.doc.Field(name)
	if !ok {
		return fmt.Errorf("form: unknown field %q", name)
	}
	if field.Type != schema.FieldTypeFile || !field.Multiple {
		return fmt.Errorf("form: field %q does not accept multiple files", name)
	}
	if err := CheckFileBatch(field, files); err != nil {
		return err
	}
	f.values[name] = append([]FileUpload(nil), files...)
	delete(f.errors, name)
	return nil
}

// RemoveFileAt drops one file from a multi-file field by index. Out-of-range
// indexes are ignored.
func (f *Form) RemoveFileAt(name string, index int) {
	files, ok := f.values[name].([]FileUpload)
	if !ok || index < 0 || index >= len(files) {
		return
	}
	f.values[name] = append(files[:index:index], files[index+1:]...)
}

// ClearFiles removes every file from a multi-file field.
func (f *Form) ClearFiles(name string) {
	if _, ok := f.values[name].([]FileUpload); ok {
		delete(f.values, name)
	}
}

// Validate recomputes the error map over visible fields and replaces the
// displayed errors regardless of outcome, so a fully valid pass clears stale
// messages. Delete mode always validates clean: it bypasses field logic.
func (f *Form) Validate() (Errors, bool) {
	if f.mode == ModeDelete {
		f.errors = make(Errors)
		return f.errors, true
	}
	f.errors = Validate(f.doc, f.mode, f.values)
	return f.errors, f.errors.Valid()
}

// Payload returns what the submission callback receives: the full form state
// (hidden fields included) for create/edit, an empty map for delete.
func (f *Form) Payload() Values {
	if f.mode == ModeDelete {
		return Values{}
	}
	return f.values.Clone()
}

// deriveFromMatch re-runs every time the match selector changes in create
// mode. It fills title from the selected option (gallery schemas get the
// "{home} v {away} Gallery" form) and, when the schema carries a folderName
// field, the CDN folder name from the option's fixture metadata.
func (f *Form) deriveFromMatch(field schema.Field, value any) {
	selected := coerceString(value)
	var option *schema.Option
	for i := range field.Options {
		if field.Options[i].Value == selected {
			option = &field.Options[i]
			break
		}
	}
	if option == nil {
		return
	}

	isGallery := f.doc.Has("folderName")

	if f.doc.Has("title") {
		if isGallery && option.HomeTeam != "" && option.AwayTeam != "" {
			f.values["title"] = GalleryTitle(option.HomeTeam, option.AwayTeam)
		} else {
			f.values["title"] = option.Label
		}
		delete(f.errors, "title")
	}

	if isGallery && option.MatchDate != "" {
		if folder, err := FolderName(option.MatchDate, option.HomeTeam, option.AwayTeam); err == nil {
			f.values["folderName"] = folder
			delete(f.errors, "folderName")
		}
	}
}
