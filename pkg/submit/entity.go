// Package submit routes validated form payloads to the admin REST endpoints.
// Entities resolve through a registry lookup instead of a central dispatcher,
// so adding a content type means registering a descriptor, not editing a
// switch.
package submit

import (
	"github.com/goliatone/go-clubadmin/pkg/form"
	"github.com/goliatone/go-clubadmin/pkg/schema"
)

// Entity bundles everything the router needs for one content type: its form
// schema and how to turn a payload into a wire request for each CRUD mode.
type Entity interface {
	Name() string
	Schema() schema.Schema
	BuildRequest(mode form.Mode, values form.Values) (Request, error)
}

// EntityFunc adapts a build function plus static metadata into an Entity.
type EntityFunc struct {
	EntityName   string
	EntitySchema schema.Schema
	Build        func(mode form.Mode, values form.Values) (Request, error)
}

func (e EntityFunc) Name() string          { return e.EntityName }
func (e EntityFunc) Schema() schema.Schema { return e.EntitySchema }

func (e EntityFunc) BuildRequest(mode form.Mode, values form.Values) (Request, error) {
	if e.Build == nil {
		return Request{}, &ModeError{Entity: e.EntityName, Mode: mode}
	}
	return e.Build(mode, values)
}
