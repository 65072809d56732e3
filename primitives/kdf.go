package primitives

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// Scrypt KDF parameters fixed by the TripleSec v3 specification. These are
// not configurable — spec §6 fixes them exactly.
const (
	ScryptN      = 1 << 15 // 32768
	ScryptR      = 8
	ScryptP      = 1
	MegaKeyBytes = 264
)

// DeriveMegaKey runs Scrypt with the fixed v3 parameters and returns the
// 264-byte "mega key" that the caller partitions into subkeys.
func DeriveMegaKey(password, salt []byte) ([]byte, error) {
	key, err := scrypt.Key(password, salt, ScryptN, ScryptR, ScryptP, MegaKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("primitives: scrypt: %w", err)
	}
	return key, nil
}
