package tablewindow

import (
	"net/http"

	"github.com/goliatone/go-clubadmin/pkg/standings"
)

// GuardFunc rejects a request before the table is computed.
type GuardFunc func(r *http.Request) error

// RowsProvider yields the full league table per request.
type RowsProvider func(r *http.Request) ([]standings.Row, error)

type Options struct {
	RoutePath     string
	TeamParam     string
	PositionParam string
	DefaultTeam   string
	Guard         GuardFunc
	Provider      RowsProvider

	Rows []standings.Row
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:     "/api/table/window",
		TeamParam:     "team",
		PositionParam: "position",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/table/window"
	}
	if opts.TeamParam == "" {
		opts.TeamParam = "team"
	}
	if opts.PositionParam == "" {
		opts.PositionParam = "position"
	}
	if opts.Rows != nil {
		opts.Rows = append([]standings.Row{}, opts.Rows...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

// WithDefaultTeam sets the club fragment used when the request names none.
func WithDefaultTeam(fragment string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultTeam = fragment
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithRows serves a static table.
func WithRows(rows []standings.Row) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if rows == nil {
			o.Rows = nil
			return
		}
		o.Rows = append([]standings.Row{}, rows...)
	}
}

// WithProvider sets a per-request table source. It wins over WithRows.
func WithProvider(provider RowsProvider) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Provider = provider
	}
}

func (o Options) rowsFor(r *http.Request) ([]standings.Row, error) {
	if o.Provider != nil {
		return o.Provider(r)
	}
	return o.Rows, nil
}
