package main

import (
	"fmt"

	"github.com/spf13/cobra"

	triplesec "github.com/Redeaux-Corporation/triplesec"
)

var checkPrefixInPath string

// checkPrefixCmd validates just the envelope header without attempting a
// full decrypt. Useful for quickly rejecting garbage before spending a
// Scrypt derivation on it.
var checkPrefixCmd = &cobra.Command{
	Use:   "check-prefix",
	Short: "Validate an envelope's magic, version, and header length without decrypting",
	RunE: func(cmd *cobra.Command, args []string) error {
		envelope, err := readInput(checkPrefixInPath)
		if err != nil {
			return fmt.Errorf("reading envelope: %w", err)
		}

		salt, ivs, bodyLen, err := triplesec.CheckPrefix(envelope)
		if err != nil {
			return fmt.Errorf("invalid envelope: %w", err)
		}

		fmt.Printf("salt=%x body_bytes=%d\n", salt, bodyLen)
		fmt.Printf("iv_aes=%x iv_twofish=%x iv_salsa=%x\n", ivs.AES, ivs.Twofish, ivs.Salsa)
		return nil
	},
}

func init() {
	checkPrefixCmd.Flags().StringVar(&checkPrefixInPath, "in", "-", "Envelope file to inspect, or - for stdin")
}
