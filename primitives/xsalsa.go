package primitives

import (
	"fmt"

	"golang.org/x/crypto/salsa20"
)

// XSalsaKeySize is the XSalsa20 key size.
const XSalsaKeySize = 32

// XSalsaNonceSize is the XSalsa20 (extended-nonce) nonce size.
const XSalsaNonceSize = 24

// XSalsa20 applies the XSalsa20 stream cipher to data using a 24-byte nonce.
// Like CTR mode, it is its own inverse.
func XSalsa20(key, nonce, data []byte) ([]byte, error) {
	if len(key) != XSalsaKeySize {
		return nil, fmt.Errorf("primitives: XSalsa20 key must be %d bytes, got %d", XSalsaKeySize, len(key))
	}
	if len(nonce) != XSalsaNonceSize {
		return nil, fmt.Errorf("primitives: XSalsa20 nonce must be %d bytes, got %d", XSalsaNonceSize, len(nonce))
	}
	var k [32]byte
	copy(k[:], key)
	out := make([]byte, len(data))
	salsa20.XORKeyStream(out, data, nonce, &k)
	return out, nil
}
