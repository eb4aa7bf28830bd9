package dropdowns

import (
	"net/http"

	"github.com/goliatone/go-clubadmin/pkg/lookup"
)

// GuardFunc rejects a request before the catalog is computed. Returning an
// error that implements HTTPError controls the response status.
type GuardFunc func(r *http.Request) error

// CatalogProvider computes the catalog for one screen per request. Screen is
// the path segment the route was mounted under, e.g. "matches".
type CatalogProvider func(r *http.Request, screen string) (*lookup.Catalog, error)

type Options struct {
	RoutePrefix string
	RouteSuffix string
	Screens     []string
	Guard       GuardFunc
	Provider    CatalogProvider

	catalogs map[string]*lookup.Catalog
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePrefix: "/api/admin",
		RouteSuffix: "/dropdowns",
		Screens:     []string{"matches", "match-reports", "match-galleries"},
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
	if opts.RoutePrefix == "" {
		opts.RoutePrefix = "/api/admin"
	}
	if opts.RouteSuffix == "" {
		opts.RouteSuffix = "/dropdowns"
	}
	if len(opts.Screens) == 0 {
		opts.Screens = []string{"matches", "match-reports", "match-galleries"}
	} else {
		opts.Screens = append([]string{}, opts.Screens...)
	}
	return opts
}

func WithRoutePrefix(prefix string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePrefix = prefix
	}
}

func WithScreens(screens []string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if screens == nil {
			o.Screens = nil
			return
		}
		o.Screens = append([]string{}, screens...)
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

// WithProvider sets a per-request catalog source. It wins over WithCatalog.
func WithProvider(provider CatalogProvider) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Provider = provider
	}
}

// WithCatalog registers a static catalog for one screen.
func WithCatalog(screen string, catalog *lookup.Catalog) OptionFn {
	return func(o *Options) {
		if o == nil || screen == "" {
			return
		}
		if o.catalogs == nil {
			o.catalogs = make(map[string]*lookup.Catalog)
		}
		o.catalogs[screen] = catalog
	}
}

func (o Options) catalogFor(r *http.Request, screen string) (*lookup.Catalog, error) {
	if o.Provider != nil {
		return o.Provider(r, screen)
	}
	if catalog, ok := o.catalogs[screen]; ok && catalog != nil {
		return catalog, nil
	}
	return &lookup.Catalog{}, nil
}
