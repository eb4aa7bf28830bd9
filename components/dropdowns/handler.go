package dropdowns

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goliatone/go-clubadmin/pkg/lookup"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type catalogResponse struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    *lookup.Catalog `json:"data,omitempty"`
}

// Handler builds a net/http handler serving one screen's catalog.
func Handler(screen string, fns ...OptionFn) http.Handler {
	return HandlerWithOptions(screen, NewOptions(fns...))
}

// HandlerWithOptions builds a handler from a pre-constructed Options value.
func HandlerWithOptions(screen string, opts Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		catalog, err := opts.catalogFor(r, screen)
		if err != nil {
			writeJSON(w, http.StatusBadGateway, catalogResponse{
				Success: false,
				Error:   "catalog unavailable",
			}, r.Method)
			return
		}
		if catalog == nil {
			catalog = &lookup.Catalog{}
		}
		writeJSON(w, http.StatusOK, catalogResponse{Success: true, Data: catalog}, r.Method)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload catalogResponse, method string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if method == http.MethodHead {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		if c := httpErr.StatusCode(); c > 0 {
			code = c
		}
	}
	http.Error(w, http.StatusText(code), code)
}
