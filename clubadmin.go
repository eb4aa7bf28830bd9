// Package clubadmin re-exports the main entry points of the admin-console
// toolkit: schema-driven forms, entity submission, dynamic option lookups and
// the league-table window.
package clubadmin

import (
	"context"

	"github.com/goliatone/go-clubadmin/pkg/form"
	"github.com/goliatone/go-clubadmin/pkg/lookup"
	"github.com/goliatone/go-clubadmin/pkg/schema"
	"github.com/goliatone/go-clubadmin/pkg/standings"
	"github.com/goliatone/go-clubadmin/pkg/submit"
)

// Schema aliases exported via the root package for convenience.
type (
	Schema = schema.Schema
	Field  = schema.Field
	Option = schema.Option
)

// Form state types.
type (
	Form       = form.Form
	Mode       = form.Mode
	Values     = form.Values
	Errors     = form.Errors
	FileUpload = form.FileUpload
)

// CRUD modes.
const (
	ModeCreate = form.ModeCreate
	ModeEdit   = form.ModeEdit
	ModeDelete = form.ModeDelete
)

// NewForm constructs a form for the schema in the given mode.
func NewForm(doc Schema, mode Mode, initial Values) (*Form, error) {
	return form.New(doc, mode, initial)
}

// NewSubmitClient constructs a submission client for the admin API with every
// builtin entity registered.
func NewSubmitClient(baseURL string, opts ...submit.ClientOption) (*submit.Client, error) {
	return submit.NewClient(baseURL, opts...)
}

// NewLookupClient constructs a client for the dropdown catalog endpoints.
func NewLookupClient(baseURL string, opts ...lookup.ClientOption) (*lookup.Client, error) {
	return lookup.NewClient(baseURL, opts...)
}

// Submit resolves, builds and sends one entity payload. It is the simplest
// entry point for callers that already hold validated values.
func Submit(ctx context.Context, baseURL, entity string, mode Mode, values Values, opts ...submit.ClientOption) (*submit.Response, error) {
	client, err := submit.NewClient(baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return client.Submit(ctx, entity, mode, values)
}

// SelectWindow computes the condensed league-table slice around the club.
func SelectWindow(rows []standings.Row, teamFragment string, fallbackPosition int) standings.Window {
	return standings.SelectWindow(rows, teamFragment, fallbackPosition)
}
