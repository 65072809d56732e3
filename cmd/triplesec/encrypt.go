package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Redeaux-Corporation/triplesec/audit"
	triplesec "github.com/Redeaux-Corporation/triplesec"
)

var (
	encryptPassword string
	encryptInPath   string
	encryptOutPath  string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a message into a TripleSec v3 envelope",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePermission(audit.PermEncrypt); err != nil {
			return err
		}

		password, err := passwordFromEnvOrFlag(encryptPassword)
		if err != nil {
			return err
		}

		plaintext, err := readInput(encryptInPath)
		if err != nil {
			return fmt.Errorf("reading plaintext: %w", err)
		}

		c, err := triplesec.NewCipher(password)
		if err != nil {
			return fmt.Errorf("deriving cipher: %w", err)
		}
		defer c.Close()

		envelope, _, err := triplesec.EncryptWithCipher(c, plaintext, systemSource())
		if err != nil {
			return fmt.Errorf("encrypting: %w", err)
		}

		slog.Debug("encrypted message", "bytes_in", len(plaintext), "bytes_out", len(envelope))
		return writeOutput(encryptOutPath, envelope)
	},
}

func init() {
	encryptCmd.Flags().StringVar(&encryptPassword, "password", "", "Password (falls back to TRIPLESEC_PASSWORD)")
	encryptCmd.Flags().StringVar(&encryptInPath, "in", "-", "Input plaintext file, or - for stdin")
	encryptCmd.Flags().StringVar(&encryptOutPath, "out", "-", "Output envelope file, or - for stdout")
}

func readInput(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" || path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
