// Package dropdowns is a small, extraction-friendly component that serves the
// dynamic option catalogs behind the admin console's dropdown fields. It can
// be mounted on any mux that exposes Handle(pattern, handler), including
// *http.ServeMux and chi routers.
package dropdowns
