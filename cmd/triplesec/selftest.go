package main

import (
	"fmt"

	"github.com/spf13/cobra"

	triplesec "github.com/Redeaux-Corporation/triplesec"
	"github.com/Redeaux-Corporation/triplesec/audit"
)

// selftestCmd runs a one-shot encrypt/decrypt round trip against a fixed
// sample message and samples the ciphertext's bit balance. It is a smoke
// test an operator can run against a freshly deployed binary, not a
// substitute for the package's own test suite.
var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run a self-contained round-trip check and report ciphertext entropy",
	RunE: func(cmd *cobra.Command, args []string) error {
		const password = "triplesec-selftest-password"
		const message = "the quick brown fox jumps over the lazy dog"

		envelope, err := triplesec.Encrypt([]byte(password), []byte(message))
		if err != nil {
			return fmt.Errorf("selftest encrypt: %w", err)
		}

		plaintext, err := triplesec.Decrypt([]byte(password), envelope)
		if err != nil {
			return fmt.Errorf("selftest decrypt: %w", err)
		}
		if string(plaintext) != message {
			return fmt.Errorf("selftest round trip mismatch: got %q", plaintext)
		}

		sample := audit.SampleEntropy(envelope)
		fmt.Println("round trip: ok")
		fmt.Printf("envelope_bytes=%d ones=%d/%d monobit_ratio=%.4f shannon_bits=%.4f\n",
			len(envelope), sample.OnesCount, sample.TotalBits, sample.MonobitRatio, sample.ShannonBits)
		return nil
	},
}
