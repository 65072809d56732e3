package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	triplesec "github.com/Redeaux-Corporation/triplesec"
	"github.com/Redeaux-Corporation/triplesec/audit"
)

var (
	decryptPassword string
	decryptInPath   string
	decryptOutPath  string
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a TripleSec v3 envelope",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePermission(audit.PermDecrypt); err != nil {
			return err
		}

		password, err := passwordFromEnvOrFlag(decryptPassword)
		if err != nil {
			return err
		}

		envelope, err := readInput(decryptInPath)
		if err != nil {
			return fmt.Errorf("reading envelope: %w", err)
		}

		plaintext, err := triplesec.Decrypt(password, envelope)
		if err != nil {
			return fmt.Errorf("decrypting: %w", err)
		}

		slog.Debug("decrypted message", "bytes_in", len(envelope), "bytes_out", len(plaintext))
		return writeOutput(decryptOutPath, plaintext)
	},
}

func init() {
	decryptCmd.Flags().StringVar(&decryptPassword, "password", "", "Password (falls back to TRIPLESEC_PASSWORD)")
	decryptCmd.Flags().StringVar(&decryptInPath, "in", "-", "Input envelope file, or - for stdin")
	decryptCmd.Flags().StringVar(&decryptOutPath, "out", "-", "Output plaintext file, or - for stdout")
}
