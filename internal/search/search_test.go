package search

import "testing"

func TestRecordKeepsNewestFirst(t *testing.T) {
	var r Recent
	r.Record("kopi")
	r.Record("keripik")
	r.Record("teh")

	want := []string{"teh", "keripik", "kopi"}
	if len(r.Terms) != len(want) {
		t.Fatalf("expected %d terms, got %v", len(want), r.Terms)
	}
	for i, term := range want {
		if r.Terms[i] != term {
			t.Fatalf("terms[%d]: expected %q, got %v", i, term, r.Terms)
		}
	}
}

func TestRecordDeduplicatesCaseInsensitively(t *testing.T) {
	var r Recent
	r.Record("kopi")
	r.Record("teh")
	r.Record("Kopi")

	if len(r.Terms) != 2 {
		t.Fatalf("expected 2 terms, got %v", r.Terms)
	}
	if r.Terms[0] != "Kopi" || r.Terms[1] != "teh" {
		t.Fatalf("repeat search should move to the front, got %v", r.Terms)
	}
}

func TestRecordEvictsOldestPastCap(t *testing.T) {
	var r Recent
	for _, term := range []string{"a", "b", "c", "d", "e", "f"} {
		r.Record(term)
	}
	if len(r.Terms) != maxRecent {
		t.Fatalf("expected %d terms, got %v", maxRecent, r.Terms)
	}
	if r.Terms[0] != "f" {
		t.Fatalf("newest term must lead, got %v", r.Terms)
	}
	for _, term := range r.Terms {
		if term == "a" {
			t.Fatalf("oldest term should be evicted, got %v", r.Terms)
		}
	}
}

func TestRecordIgnoresBlankTerms(t *testing.T) {
	var r Recent
	r.Record("")
	r.Record("   ")
	if len(r.Terms) != 0 {
		t.Fatalf("blank terms must be ignored, got %v", r.Terms)
	}
}

func TestServiceRequiresSearchKey(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	if _, err := svc.Recent(1, ""); err != ErrSearchKeyRequired {
		t.Fatalf("expected ErrSearchKeyRequired, got %v", err)
	}
	if _, err := svc.Record(1, "", "kopi"); err != ErrSearchKeyRequired {
		t.Fatalf("expected ErrSearchKeyRequired, got %v", err)
	}
}

func TestServiceScopesListsPerTenantAndKey(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	if _, err := svc.Record(1, "alice", "kopi"); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	terms, err := svc.Recent(2, "alice")
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(terms) != 0 {
		t.Fatalf("tenant 2 must not see tenant 1's searches, got %v", terms)
	}

	terms, err = svc.Recent(1, "alice")
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(terms) != 1 || terms[0] != "kopi" {
		t.Fatalf("expected [kopi], got %v", terms)
	}
}
