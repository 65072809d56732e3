package rng

import (
	"encoding/binary"

	"github.com/Redeaux-Corporation/triplesec/primitives"
)

// seedSize is the width of the internal HMAC-DRBG key.
const seedSize = 64

// Deterministic is a value-typed, user-held random generator. Each Draw
// consumes the current value and returns the advanced generator alongside
// the output bytes; the caller is responsible for threading the returned
// state into the next call. Internally it is a simple HMAC-SHA-512 counter
// DRBG: not a general-purpose CSPRNG replacement, just enough determinism to
// let a caller reproduce a sequence of IVs (e.g. for tests) while still
// drawing from cryptographically strong material.
type Deterministic struct {
	key     [seedSize]byte
	counter uint64
}

// NewDeterministic builds a Deterministic generator from a caller-supplied
// seed. A nil or empty seed reseeds from the System source, matching the
// "re-reads OS entropy to reseed on next acquisition" behavior for a caller
// who lost their previously threaded state.
func NewDeterministic(seed []byte) (Deterministic, error) {
	var d Deterministic
	if len(seed) == 0 {
		fresh, _, err := System{}.Draw(seedSize)
		if err != nil {
			return Deterministic{}, err
		}
		copy(d.key[:], fresh)
		return d, nil
	}
	copy(d.key[:], primitives.HMACSHA512([]byte("triplesec-drbg-seed"), seed))
	return d, nil
}

// Draw produces n bytes and returns the advanced generator state.
func (d Deterministic) Draw(n int) ([]byte, Source, error) {
	out := make([]byte, 0, n)
	counter := d.counter
	for len(out) < n {
		var ctrBytes [8]byte
		binary.BigEndian.PutUint64(ctrBytes[:], counter)
		block := primitives.HMACSHA512(d.key[:], ctrBytes[:])
		out = append(out, block...)
		counter++
	}
	out = out[:n]

	var next Deterministic
	var ctrBytes [8]byte
	binary.BigEndian.PutUint64(ctrBytes[:], counter)
	copy(next.key[:], primitives.HMACSHA512(d.key[:], append([]byte("triplesec-drbg-update"), ctrBytes[:]...)))
	next.counter = counter
	return out, next, nil
}
