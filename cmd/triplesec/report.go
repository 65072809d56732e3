package main

import (
	"fmt"

	"github.com/spf13/cobra"

	triplesec "github.com/Redeaux-Corporation/triplesec"
	"github.com/Redeaux-Corporation/triplesec/audit"
	"github.com/Redeaux-Corporation/triplesec/primitives"
)

const saltBytes = 16

// reportCmd summarizes the protocol's fixed parameters and the audit
// tracker's open-cipher count. It never touches key material.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the protocol parameter summary and open-cipher count",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePermission(audit.PermViewAuditLog); err != nil {
			return err
		}

		ivBytesTotal := primitives.AESIVSize + primitives.TwofishIVSize + primitives.XSalsaNonceSize
		r := audit.NewReport(triplesec.Version, triplesec.HeaderSize, saltBytes, primitives.MACSize, ivBytesTotal)

		fmt.Printf("version=%d kdf=%s(N=%d,r=%d,p=%d,dkLen=%d)\n",
			r.Version, r.KDF.Algorithm, r.KDF.N, r.KDF.R, r.KDF.P, r.KDF.DKLen)
		fmt.Printf("ciphers=%v\n", r.Ciphers)
		fmt.Printf("macs=%v\n", r.MACs)
		fmt.Printf("header_bytes=%d salt_bytes=%d mac_bytes=%d iv_bytes_total=%d\n",
			r.HeaderBytes, r.SaltBytes, r.MacBytes, r.IVBytesTotal)
		fmt.Printf("open_ciphers=%d\n", tracker.OpenCount())
		return nil
	},
}
