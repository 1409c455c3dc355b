package ingest

import (
	"testing"

	"github.com/google/uuid"
)

func TestDirectoryResolveNormalizes(t *testing.T) {
	v := VehicleRef{ID: uuid.New(), Callsign: "HY-295", Mileage: 1000}
	dir := NewDirectory([]VehicleRef{v})

	for _, in := range []string{"HY-295", "hy-295", "  Hy-295 "} {
		got, ok := dir.Resolve(in)
		if !ok {
			t.Fatalf("Resolve(%q) did not match", in)
		}
		if got.ID != v.ID {
			t.Fatalf("Resolve(%q) resolved the wrong vehicle", in)
		}
	}

	if _, ok := dir.Resolve("HY-999"); ok {
		t.Fatal("Resolve matched a callsign that is not registered")
	}
}

func TestDirectoryAliases(t *testing.T) {
	v := VehicleRef{ID: uuid.New(), Callsign: "HY-295/HY-295A, HY-295B"}
	dir := NewDirectory([]VehicleRef{v})

	for _, alias := range []string{"HY-295", "HY-295A", "hy-295b"} {
		got, ok := dir.Resolve(alias)
		if !ok {
			t.Fatalf("alias %q did not resolve", alias)
		}
		if got.ID != v.ID {
			t.Fatalf("alias %q resolved the wrong vehicle", alias)
		}
	}
}

func TestDirectoryFirstAliasWins(t *testing.T) {
	first := VehicleRef{ID: uuid.New(), Callsign: "HY-100"}
	second := VehicleRef{ID: uuid.New(), Callsign: "HY-100"}
	dir := NewDirectory([]VehicleRef{first, second})

	got, ok := dir.Resolve("HY-100")
	if !ok {
		t.Fatal("callsign did not resolve")
	}
	if got.ID != first.ID {
		t.Fatal("expected the first registration to win the alias")
	}
}

func TestDirectoryFirst(t *testing.T) {
	empty := NewDirectory(nil)
	if _, ok := empty.First(); ok {
		t.Fatal("First on an empty directory should report no vehicle")
	}

	a := VehicleRef{ID: uuid.New(), Callsign: "HY-1"}
	b := VehicleRef{ID: uuid.New(), Callsign: "HY-2"}
	dir := NewDirectory([]VehicleRef{a, b})
	got, ok := dir.First()
	if !ok || got.ID != a.ID {
		t.Fatal("First should return the earliest registered vehicle")
	}
	if dir.Len() != 2 {
		t.Fatalf("Len = %d, want 2", dir.Len())
	}
}
