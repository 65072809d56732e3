package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"

	triplesec "github.com/Redeaux-Corporation/triplesec"
	"github.com/Redeaux-Corporation/triplesec/audit"
)

var logLevel slog.LevelVar

// gate is process-wide: the CLI is a single short-lived invocation, so there
// is no need to thread it explicitly through every subcommand. Cipher
// lifecycle events are recorded directly into triplesec.Lifecycle by the
// Cipher constructors and Cipher.Close, so the CLI does not keep its own
// parallel tracker.
var gate = audit.NewGate()

// tracker is the lifecycle tracker every subcommand reads from when
// reporting open-cipher counts.
var tracker = triplesec.Lifecycle

var rootCmd = &cobra.Command{
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Use:   "triplesec",
	Short: "Triple-paranoid password-based authenticated encryption (TripleSec v3)",
	Long: `triplesec encrypts and decrypts single messages using the TripleSec v3
protocol: a Scrypt-derived key feeding a three-layer cipher cascade
(XSalsa20, Twofish-256-CTR, AES-256-CTR) authenticated by two independent
MACs (HMAC-SHA-512 and HMAC-SHA3-512).

The cryptographic parameters are fixed by the protocol and are not
configurable through any flag here.`,
}

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stdout, &devlog.Options{
		Level: &logLevel,
	})))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("role", string(audit.RoleOperator), "Operator role for gated commands (admin, operator, auditor)")
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("role", rootCmd.PersistentFlags().Lookup("role"))
	viper.SetEnvPrefix("TRIPLESEC")
	viper.AutomaticEnv()

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if viper.GetBool("debug") {
			logLevel.Set(slog.LevelDebug)
		}
	}

	rootCmd.AddCommand(encryptCmd, decryptCmd, checkPrefixCmd, newCipherCmd, reportCmd, selftestCmd)
}

// currentRole reads the --role flag (or TRIPLESEC_ROLE env var) as an
// audit.Role.
func currentRole() audit.Role {
	return audit.Role(viper.GetString("role"))
}

// requirePermission gates a command behind the current role before it
// touches the core engine. The core library itself is never gated — this
// is strictly an operational, façade-level check.
func requirePermission(perm audit.Permission) error {
	if err := gate.Require(currentRole(), perm); err != nil {
		return fmt.Errorf("access denied: %w", err)
	}
	return nil
}

// passwordFromEnvOrFlag resolves the password from --password, falling back
// to TRIPLESEC_PASSWORD so a caller never has to put a secret in argv/shell
// history if they don't want to.
func passwordFromEnvOrFlag(flagValue string) ([]byte, error) {
	if flagValue != "" {
		return []byte(flagValue), nil
	}
	if v := viper.GetString("password"); v != "" {
		return []byte(v), nil
	}
	return nil, fmt.Errorf("no password supplied: pass --password or set TRIPLESEC_PASSWORD")
}
