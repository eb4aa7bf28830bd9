package dropdowns

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux and chi routers.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPaths returns the full mount paths for every configured screen under
// basePath.
func MountPaths(basePath string, fns ...OptionFn) []string {
	opts := NewOptions(fns...)
	paths := make([]string, 0, len(opts.Screens))
	for _, screen := range opts.Screens {
		paths = append(paths, mountPath(basePath, opts, screen))
	}
	return paths
}

// RegisterRoutes registers one handler per configured screen under basePath.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) ([]string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions registers handlers using a pre-built Options
// value.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) ([]string, error) {
	if mux == nil {
		return nil, fmt.Errorf("dropdowns: missing mux")
	}
	patterns := make([]string, 0, len(opts.Screens))
	for _, screen := range opts.Screens {
		pattern := mountPath(basePath, opts, screen)
		mux.Handle(pattern, HandlerWithOptions(screen, opts))
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

func mountPath(basePath string, opts Options, screen string) string {
	route := opts.RoutePrefix + "/" + strings.Trim(screen, "/") + opts.RouteSuffix
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}

	basePath = strings.TrimSpace(basePath)
	if basePath == "" || basePath == "/" {
		return route
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/") + route
}
