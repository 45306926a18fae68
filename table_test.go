package main

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestGenerateCandidatesDedup(t *testing.T) {
	table := GenerateCandidates(2)

	if len(table[0].Labels) != 0 || !table[0].U.EqualApprox(identityGate, 1e-9) {
		t.Fatalf("entry 0 must be the identity, got %v", table[0])
	}

	// H·H is the identity again and must have been dropped.
	for _, e := range table {
		if reflect.DeepEqual(e.Labels, []string{"H", "H"}) {
			t.Error("duplicate sequence H,H survived dedup")
		}
	}

	// No two surviving entries may coincide up to global phase.
	for i := 0; i < len(table); i++ {
		for j := i + 1; j < len(table); j++ {
			if equalUpToPhase(table[i].U, table[j].U, 1e-9) {
				t.Errorf("entries %v and %v are phase-equivalent", table[i].Labels, table[j].Labels)
			}
		}
	}
}

func TestSequenceUnitary(t *testing.T) {
	u, err := SequenceUnitary([]string{"H", "H"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !u.EqualApprox(identityGate, 1e-9) {
		t.Errorf("H·H = %v, want identity", u)
	}

	if _, err := SequenceUnitary([]string{"H", "Q"}); err == nil {
		t.Error("unknown label should be an error")
	}
}

func TestFilterByLength(t *testing.T) {
	table := GenerateCandidates(3)
	short := table.FilterByLength(1)

	for _, e := range short {
		if len(e.Labels) > 1 {
			t.Errorf("entry %v exceeds the length cap", e.Labels)
		}
	}
	if short.MaxSequenceLength() > 1 {
		t.Errorf("MaxSequenceLength = %d after filtering to 1", short.MaxSequenceLength())
	}
	if table.MaxSequenceLength() != 3 {
		t.Errorf("full table MaxSequenceLength = %d, want 3", table.MaxSequenceLength())
	}
}

func TestCandidateTableRoundTrip(t *testing.T) {
	table := GenerateCandidates(2)
	path := filepath.Join(t.TempDir(), "table.json")

	if err := SaveCandidateTable(path, table); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadCandidateTable(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(loaded) != len(table) {
		t.Fatalf("loaded %d entries, want %d", len(loaded), len(table))
	}
	for i := range table {
		if len(loaded[i].Labels) != len(table[i].Labels) {
			t.Errorf("entry %d labels = %v, want %v", i, loaded[i].Labels, table[i].Labels)
			continue
		}
		for j := range table[i].Labels {
			if loaded[i].Labels[j] != table[i].Labels[j] {
				t.Errorf("entry %d labels = %v, want %v", i, loaded[i].Labels, table[i].Labels)
				break
			}
		}
		if !loaded[i].U.EqualApprox(table[i].U, 1e-12) {
			t.Errorf("entry %d unitary changed across the round trip", i)
		}
	}
}

func TestLoadCandidateTableBadFile(t *testing.T) {
	if _, err := LoadCandidateTable(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should be an error")
	}
}
