package audit

import (
	"fmt"
	"testing"
)

func TestTrackerRecordsConstructionAndClose(t *testing.T) {
	fmt.Println("Test: Tracker records Cipher construction and close")

	tr := NewTracker()
	id := tr.RecordConstruction("deadbeef", "batch-1")

	if tr.OpenCount() != 1 {
		t.Fatalf("expected 1 open entry, got %d", tr.OpenCount())
	}

	tr.RecordClose(id)

	if tr.OpenCount() != 0 {
		t.Fatalf("expected 0 open entries after close, got %d", tr.OpenCount())
	}

	entries := tr.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry total, got %d", len(entries))
	}
	if !entries[0].Zeroized {
		t.Fatal("entry should be marked zeroized after RecordClose")
	}
	if entries[0].SaltFingerprint != "deadbeef" {
		t.Fatalf("salt fingerprint mismatch: %q", entries[0].SaltFingerprint)
	}

	fmt.Println("✓ lifecycle tracked through construction and close")
}

func TestRecordCloseOnUnknownIDIsNoop(t *testing.T) {
	tr := NewTracker()
	tr.RecordClose([16]byte{}) // zero-value UUID, never recorded

	if len(tr.Entries()) != 0 {
		t.Fatal("expected no entries")
	}
}

func TestOpenCountTracksMultipleCiphers(t *testing.T) {
	tr := NewTracker()
	id1 := tr.RecordConstruction("aa", "one")
	_ = tr.RecordConstruction("bb", "two")

	if tr.OpenCount() != 2 {
		t.Fatalf("expected 2 open, got %d", tr.OpenCount())
	}

	tr.RecordClose(id1)
	if tr.OpenCount() != 1 {
		t.Fatalf("expected 1 open after closing one, got %d", tr.OpenCount())
	}
}
