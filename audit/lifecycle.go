// Package audit provides operational tooling around the triplesec core:
// a Cipher construction/zeroization audit trail, an optional role gate for
// multi-operator deployments, and a diagnostics report. None of it is part
// of the cryptographic core — spec.md keeps key-wrapping, password storage,
// and similar operational concerns out of scope for the engine itself, and
// this package is deliberately a façade-level observer, not a participant in
// the encrypt/decrypt pipeline.
package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry records one Cipher lifecycle event: its construction or its
// zeroization via Close. SaltFingerprint should be a non-reversible
// identifier of the salt (e.g. its hex-encoded first bytes), never the
// password or any derived subkey.
type Entry struct {
	ID              uuid.UUID
	SaltFingerprint string
	Label           string // operator-supplied, e.g. a batch or request name
	Constructed     time.Time
	Closed          time.Time // zero value until the Cipher is closed
	Zeroized        bool
}

// Tracker accumulates lifecycle Entries for inspection (e.g. by the `report`
// and `new-cipher` CLI subcommands, or an operator verifying the mandatory
// zeroization contract from spec §5/§9 actually ran).
type Tracker struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*Entry
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{entries: make(map[uuid.UUID]*Entry)}
}

// RecordConstruction logs a new Cipher's construction and returns the Entry
// ID to pass to RecordClose later.
func (tr *Tracker) RecordConstruction(saltFingerprint, label string) uuid.UUID {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	id := uuid.New()
	tr.entries[id] = &Entry{
		ID:              id,
		SaltFingerprint: saltFingerprint,
		Label:           label,
		Constructed:     time.Now(),
	}
	return id
}

// RecordClose marks the Entry for id as zeroized. It is a no-op if id is
// unknown or already closed.
func (tr *Tracker) RecordClose(id uuid.UUID) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	e, ok := tr.entries[id]
	if !ok || e.Zeroized {
		return
	}
	e.Closed = time.Now()
	e.Zeroized = true
}

// Entries returns a snapshot of all recorded lifecycle entries, oldest first
// by construction time is not guaranteed — callers that need ordering should
// sort by Constructed.
func (tr *Tracker) Entries() []Entry {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	out := make([]Entry, 0, len(tr.entries))
	for _, e := range tr.entries {
		out = append(out, *e)
	}
	return out
}

// OpenCount returns the number of tracked Ciphers that have not yet been
// closed (and therefore not yet zeroized) — a live count an operator can
// alert on if it grows unexpectedly.
func (tr *Tracker) OpenCount() int {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	n := 0
	for _, e := range tr.entries {
		if !e.Zeroized {
			n++
		}
	}
	return n
}
