// Package primitives wraps the fixed set of external cryptographic
// primitives TripleSec v3 is built on: AES-256 and Twofish-256 in CTR mode,
// XSalsa20, HMAC-SHA-512, HMAC-SHA3-512, and Scrypt. Nothing here selects or
// negotiates an algorithm — every function fixes its primitive per the v3
// specification and is a pure function of its inputs.
package primitives

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/twofish"
)

// AESKeySize is the key size for AES-256.
const AESKeySize = 32

// AESIVSize is the CTR-mode IV size for AES (the AES block size).
const AESIVSize = aes.BlockSize

// TwofishKeySize is the key size for Twofish-256.
const TwofishKeySize = 32

// TwofishIVSize is the CTR-mode IV size for Twofish (the Twofish block size).
const TwofishIVSize = twofish.BlockSize

// AES256CTR applies AES-256 in CTR mode to data. CTR mode is its own
// inverse: the same call encrypts or decrypts.
func AES256CTR(key, iv, data []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("primitives: AES-256 key must be %d bytes, got %d", AESKeySize, len(key))
	}
	if len(iv) != AESIVSize {
		return nil, fmt.Errorf("primitives: AES-256 CTR iv must be %d bytes, got %d", AESIVSize, len(iv))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("primitives: aes.NewCipher: %w", err)
	}
	out := make([]byte, len(data))
	cipher.NewCTR(block, iv).XORKeyStream(out, data)
	return out, nil
}

// Twofish256CTR applies Twofish-256 in CTR mode to data.
func Twofish256CTR(key, iv, data []byte) ([]byte, error) {
	if len(key) != TwofishKeySize {
		return nil, fmt.Errorf("primitives: Twofish-256 key must be %d bytes, got %d", TwofishKeySize, len(key))
	}
	if len(iv) != TwofishIVSize {
		return nil, fmt.Errorf("primitives: Twofish-256 CTR iv must be %d bytes, got %d", TwofishIVSize, len(iv))
	}
	block, err := twofish.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("primitives: twofish.NewCipher: %w", err)
	}
	out := make([]byte, len(data))
	cipher.NewCTR(block, iv).XORKeyStream(out, data)
	return out, nil
}
