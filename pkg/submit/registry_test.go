package submit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-clubadmin/pkg/form"
	"github.com/goliatone/go-clubadmin/pkg/schema"
)

func stubEntity(name string) Entity {
	return EntityFunc{
		EntityName:   name,
		EntitySchema: schema.Schema{Name: name},
		Build: func(mode form.Mode, values form.Values) (Request, error) {
			return jsonRequest("POST", "/api/admin/"+name, values)
		},
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if err := registry.Register(stubEntity("award")); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	// Lookup is case-insensitive.
	entity, err := registry.Get("  AWARD ")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if entity.Name() != "award" {
		t.Fatalf("unexpected entity %q", entity.Name())
	}
	if !registry.Has("Award") {
		t.Fatalf("Has must match registered entity")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if err := registry.Register(stubEntity("award")); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	err := registry.Register(stubEntity("Award"))
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if _, err := registry.Get("nope"); err == nil {
		t.Fatalf("expected error for unknown entity")
	}
}

func TestRegistryListSorted(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, name := range []string{"zebra", "award", "match"} {
		if err := registry.Register(stubEntity(name)); err != nil {
			t.Fatalf("Register(%q) returned error: %v", name, err)
		}
	}
	want := []string{"award", "match", "zebra"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistryRoutesBuiltins(t *testing.T) {
	t.Parallel()

	registry := DefaultRegistry()
	for _, name := range []string{
		EntityMatch, EntityNews, EntityMatchReport, EntityMatchGallery,
		EntityPoll, EntityBusinessEnquiry, EntitySponsor, EntityPlayer,
		EntityStaff, EntityFanSubmission,
	} {
		if !registry.Has(name) {
			t.Fatalf("default registry missing %q", name)
		}
	}
}
