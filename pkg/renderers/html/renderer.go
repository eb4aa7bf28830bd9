// Package html renders form state as server-side HTML. The form shell is a
// pongo2 template; per-field controls are built directly so markup stays in
// lockstep with the validation and visibility rules.
package html

import (
	"embed"
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-clubadmin/pkg/form"
)

//go:embed templates/*.tpl
var templateFS embed.FS

// Renderer renders complete forms. Safe for concurrent use once constructed.
type Renderer struct {
	formTpl *pongo2.Template
}

// New constructs a Renderer from the embedded template set.
func New() (*Renderer, error) {
	set := pongo2.NewSet("clubadmin-html", pongo2.NewFSLoader(templateFS))
	tpl, err := set.FromFile("templates/form.html.tpl")
	if err != nil {
		return nil, fmt.Errorf("html: load form template: %w", err)
	}
	return &Renderer{formTpl: tpl}, nil
}

// RenderForm renders the form's visible fields with their current values and
// error messages. Hidden fields produce no markup at all.
func (r *Renderer) RenderForm(frm *form.Form) (string, error) {
	if frm == nil {
		return "", fmt.Errorf("html: nil form")
	}

	doc := frm.Schema()
	values := frm.Values()
	errs := frm.Errors()

	var fields []map[string]any
	for _, field := range form.VisibleFields(doc, values) {
		value, _ := values[field.Name]
		frozen := frm.Mode() == form.ModeEdit && field.ReadOnlyInEdit
		fields = append(fields, map[string]any{
			"name":   field.Name,
			"markup": RenderField(field, value, errs[field.Name], frozen),
		})
	}

	out, err := r.formTpl.Execute(pongo2.Context{
		"name":        doc.Name,
		"mode":        string(frm.Mode()),
		"fields":      fields,
		"submitLabel": submitLabel(frm.Mode()),
	})
	if err != nil {
		return "", fmt.Errorf("html: execute form template: %w", err)
	}
	return out, nil
}

func submitLabel(mode form.Mode) string {
	switch mode {
	case form.ModeEdit:
		return "Save Changes"
	case form.ModeDelete:
		return "Delete"
	default:
		return "Create"
	}
}
