package maps

import (
	"strings"
	"testing"
)

// Every id in the enumeration must have a registry case; a silent
// fallthrough would abort here.
func TestRegistryIsExhaustive(t *testing.T) {
	for _, id := range AllIDs() {
		t.Run(id.String(), func(t *testing.T) {
			m := New(id)
			if m == nil {
				t.Fatalf("New(%v) returned nil", id)
			}
			if m.Width() <= 0 || m.Height() <= 0 {
				t.Fatalf("New(%v) has empty geometry", id)
			}
		})
	}
}

func TestRegistryUnknownIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unknown map id")
		}
	}()
	New(MapID(99))
}

func TestRegistryReturnsIndependentInstances(t *testing.T) {
	a := New(Wonderland)
	b := New(Wonderland)
	if a == b {
		t.Fatal("expected independent map instances")
	}
	// mutating one map's collision view must not leak into the other
	a.Collisions(1)[0] = TilePlain
	if b.Collisions(1)[0] != TileVoid {
		t.Fatal("collision data shared between instances")
	}
}

func TestMapIDNames(t *testing.T) {
	for _, id := range AllIDs() {
		name := id.String()
		if name == "" || strings.HasPrefix(name, "MapID(") {
			t.Fatalf("id %d has no stable name", int(id))
		}
		got, ok := ParseID(name)
		if !ok || got != id {
			t.Fatalf("ParseID(%q) = %v,%v, want %v", name, got, ok, id)
		}
	}
	if _, ok := ParseID("purapril_castle"); ok {
		t.Fatal("ParseID accepted an unregistered name")
	}
}
