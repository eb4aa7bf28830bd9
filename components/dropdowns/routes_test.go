package dropdowns

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMountPaths(t *testing.T) {
	t.Parallel()

	want := []string{
		"/api/admin/matches/dropdowns",
		"/api/admin/match-reports/dropdowns",
		"/api/admin/match-galleries/dropdowns",
	}
	if diff := cmp.Diff(want, MountPaths("")); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	prefixed := MountPaths("/console")
	if prefixed[0] != "/console/api/admin/matches/dropdowns" {
		t.Fatalf("unexpected prefixed path %q", prefixed[0])
	}
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	patterns, err := RegisterRoutes(mux, "", WithScreens([]string{"matches"}))
	if err != nil {
		t.Fatalf("RegisterRoutes returned error: %v", err)
	}
	if len(patterns) != 1 || patterns[0] != "/api/admin/matches/dropdowns" {
		t.Fatalf("unexpected patterns %v", patterns)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/matches/dropdowns", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestRegisterRoutesRequiresMux(t *testing.T) {
	t.Parallel()

	if _, err := RegisterRoutes(nil, ""); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}
