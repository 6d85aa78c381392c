package core_test

import (
	"testing"

	"github.com/aretw0/markerprune/pkg/core"
)

func TestDeletionRecord(t *testing.T) {
	r := core.NewDeletionRecord()

	if !r.Add(core.Deletion{Set: "markers", Key: "b", Label: "Base"}) {
		t.Fatal("first Add should succeed")
	}
	if !r.Add(core.Deletion{Set: "markers", Key: "a", Label: "Alpha"}) {
		t.Fatal("second Add should succeed")
	}
	if r.Add(core.Deletion{Set: "markers", Key: "b", Label: "Other"}) {
		t.Error("duplicate key must not be added")
	}
	if !r.Add(core.Deletion{Set: "towns", Key: "b", Label: "Town"}) {
		t.Error("same key in another set is a different entry")
	}

	if r.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", r.Len())
	}
	if label, ok := r.Label("markers", "b"); !ok || label != "Base" {
		t.Errorf("Label(markers,b) = %q,%v", label, ok)
	}
	if r.Contains("markers", "c") {
		t.Error("unexpected key c")
	}

	entries := r.Entries()
	if entries[0].Key != "b" || entries[1].Key != "a" || entries[2].Set != "towns" {
		t.Errorf("entries not in insertion order: %+v", entries)
	}
}
