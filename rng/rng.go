// Package rng supplies the randomness capability the TripleSec v3 engine
// draws IVs from. Two implementations of Source exist: System, a
// side-effecting draw from the OS entropy pool, and Deterministic, a
// value-typed generator that threads its advanced state back to the caller.
// The engine is generic over Source: it never knows which one it was given.
package rng

// Source is the randomness capability the engine requires. Draw returns n
// fresh bytes plus the Source to use for the next draw. System always
// returns itself (it carries no state); Deterministic returns a distinct
// value reflecting its advanced internal counter. Losing the returned state
// from a Deterministic source is a correctness, not a security, risk: the
// next acquisition reseeds from System.
type Source interface {
	Draw(n int) (out []byte, next Source, err error)
}
