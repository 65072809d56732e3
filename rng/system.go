package rng

import (
	"crypto/rand"
	"fmt"
)

// System draws directly from the OS entropy pool on every call. It carries
// no state, so Draw always returns itself as the next Source.
type System struct{}

// Draw reads n cryptographically strong random bytes from the OS.
func (System) Draw(n int) ([]byte, Source, error) {
	out := make([]byte, n)
	if _, err := rand.Read(out); err != nil {
		return nil, nil, fmt.Errorf("rng: system source: %w", err)
	}
	return out, System{}, nil
}
