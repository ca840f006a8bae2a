package job

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestKeyOf_NormalizesCaseAndSpace(t *testing.T) {
	a := KeyOf("Backend Engineer", "Acme Corp")
	b := KeyOf("  backend engineer ", "ACME CORP")
	if a != b {
		t.Fatalf("keys differ: %v vs %v", a, b)
	}
	c := KeyOf("Backend Engineer", "Hooli")
	if a == c {
		t.Fatalf("distinct companies collided")
	}
}

func TestTruncate_RuneBoundary(t *testing.T) {
	s := strings.Repeat("ä", 10)
	got := Truncate(s, 4)
	if got != "ääää" {
		t.Fatalf("got %q", got)
	}
	if Truncate("short", 100) != "short" {
		t.Fatalf("short strings must pass through")
	}
}

func TestRecord_FlatJSONShape(t *testing.T) {
	rec := Record{
		ID:         "abc",
		Draft:      Draft{Title: "t", Company: "c", Description: "d"},
		Source:     "Direct Input",
		SourceType: "text",
		DateAdded:  "03/15/2026",
		Status:     StatusApplied,
		LastUpdate: "03/15/2026",
	}
	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	// Draft fields sit alongside provenance, not nested under a sub-object.
	for _, key := range []string{"title", "company", "description", "source", "source_type", "date_added", "status", "last_update"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("missing %q in %v", key, m)
		}
	}
	if _, ok := m["other_info"]; ok {
		t.Fatalf("empty other_info should be omitted")
	}
}
