package tablewindow

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-clubadmin/pkg/standings"
	"github.com/goliatone/go-clubadmin/pkg/testsupport"
)

func TestHandlerServesWindow(t *testing.T) {
	t.Parallel()

	handler := Handler(WithRows(testsupport.LeagueRows()))
	req := httptest.NewRequest(http.MethodGet, "/api/table/window?team=banks", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var decoded windowResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !decoded.Success || decoded.Data == nil {
		t.Fatalf("unexpected envelope %+v", decoded)
	}
	if len(decoded.Data.Rows) != standings.WindowSize {
		t.Fatalf("unexpected window size %d", len(decoded.Data.Rows))
	}
	// Club sits 7th: window is positions 6-8 with the club in the middle.
	if decoded.Data.Rows[1].TeamName != "Banks o' Dee" || decoded.Data.Highlight != 1 {
		t.Fatalf("unexpected window %+v", decoded.Data)
	}
}

func TestHandlerUsesDefaultTeam(t *testing.T) {
	t.Parallel()

	handler := Handler(WithRows(testsupport.LeagueRows()), WithDefaultTeam("banks"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/table/window", nil))

	var decoded windowResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if decoded.Data.Rows[1].TeamName != "Banks o' Dee" {
		t.Fatalf("unexpected window %+v", decoded.Data)
	}
}

func TestHandlerPositionFallback(t *testing.T) {
	t.Parallel()

	handler := Handler(WithRows(testsupport.LeagueRows()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/table/window?team=nope&position=1", nil))

	var decoded windowResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if decoded.Data.Rows[0].Position != 1 || decoded.Data.Highlight != 0 {
		t.Fatalf("unexpected window %+v", decoded.Data)
	}
}

func TestHandlerProviderFailure(t *testing.T) {
	t.Parallel()

	handler := Handler(WithProvider(func(r *http.Request) ([]standings.Row, error) {
		return nil, fmt.Errorf("api down")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/table/window", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestHandlerGuardAndMethods(t *testing.T) {
	t.Parallel()

	handler := Handler(WithGuard(func(r *http.Request) error {
		return StatusError{Code: http.StatusUnauthorized}
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/x", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "/widget", WithRows(testsupport.LeagueRows()))
	if err != nil {
		t.Fatalf("RegisterRoutes returned error: %v", err)
	}
	if pattern != "/widget/api/table/window" {
		t.Fatalf("unexpected pattern %q", pattern)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/widget/api/table/window?position=5", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}
