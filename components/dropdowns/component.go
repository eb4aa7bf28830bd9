package dropdowns

import "net/http"

// Component bundles the dropdown handlers, their configuration, and routing
// helpers.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Handler returns the handler for one screen.
func (c *Component) Handler(screen string) http.Handler {
	if c == nil {
		return Handler(screen)
	}
	return HandlerWithOptions(screen, c.opts)
}

// RegisterRoutes registers every screen handler under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) ([]string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}
