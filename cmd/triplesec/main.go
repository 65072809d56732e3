// Command triplesec is an operational CLI shell around the triplesec
// package. It is not part of the cryptographic core (spec.md keeps
// command-line wrappers out of scope for the engine itself) — everything
// here just parses flags, reads/writes bytes, and calls into the public
// triplesec API.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
