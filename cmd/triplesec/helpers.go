package main

import (
	"github.com/Redeaux-Corporation/triplesec/rng"
)

// systemSource is the CLI's single entry point into the RNG abstraction.
// Nothing under cmd/ constructs a Deterministic source — that's a library
// concern for tests and vector reproduction, not an operational one.
func systemSource() rng.Source {
	return rng.System{}
}
