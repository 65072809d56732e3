// Package triplesec implements the core of the TripleSec v3 authenticated
// encryption protocol: Scrypt-based key derivation, a three-layer cipher
// cascade (XSalsa20, then Twofish-256-CTR, then AES-256-CTR), two
// independent MACs (HMAC-SHA-512 and HMAC-SHA3-512) computed encrypt-then-MAC
// over a domain-separated prefix, and the fixed-layout ciphertext envelope
// that frames all of it.
package triplesec

import "github.com/Redeaux-Corporation/triplesec/rng"

// Encrypt is the one-shot entry point: it draws a fresh 16-byte salt,
// constructs a Cipher, encrypts plaintext, and discards the Cipher. Use
// NewCipher plus EncryptWithCipher directly when encrypting more than one
// message under the same password, to amortize the Scrypt cost (spec §4.2
// rationale).
func Encrypt(password, plaintext []byte) ([]byte, error) {
	c, err := NewCipher(password)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	envelope, _, err := EncryptWithCipher(c, plaintext, systemRNG)
	if err != nil {
		return nil, err
	}
	return envelope, nil
}

// Decrypt is the one-shot entry point: it parses the envelope's salt,
// constructs a Cipher with NewCipherWithSalt, and delegates to
// DecryptWithCipher.
func Decrypt(password, envelope []byte) ([]byte, error) {
	salt, _, _, err := CheckPrefix(envelope)
	if err != nil {
		return nil, err
	}
	c, err := NewCipherWithSalt(password, salt)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return DecryptWithCipher(c, envelope)
}

// EncryptBatch encrypts each message in plaintexts under the same Cipher,
// threading src through every call. It short-circuits on the first error:
// the returned slice holds only the envelopes produced before the failure,
// and the error identifies which input (by index, via the returned count)
// caused it. Already-produced envelopes are not rolled back (spec §4.4
// batch semantics).
func EncryptBatch(c *Cipher, plaintexts [][]byte, src rng.Source) (envelopes [][]byte, produced int, err error) {
	envelopes = make([][]byte, 0, len(plaintexts))
	for _, pt := range plaintexts {
		var envelope []byte
		envelope, src, err = EncryptWithCipher(c, pt, src)
		if err != nil {
			return envelopes, len(envelopes), err
		}
		envelopes = append(envelopes, envelope)
	}
	return envelopes, len(envelopes), nil
}

// DecryptBatch decrypts each envelope in envelopes under the same Cipher. It
// short-circuits on the first error, returning the plaintexts decrypted so
// far.
func DecryptBatch(c *Cipher, envelopes [][]byte) (plaintexts [][]byte, produced int, err error) {
	plaintexts = make([][]byte, 0, len(envelopes))
	for _, envelope := range envelopes {
		var pt []byte
		pt, err = DecryptWithCipher(c, envelope)
		if err != nil {
			return plaintexts, len(plaintexts), err
		}
		plaintexts = append(plaintexts, pt)
	}
	return plaintexts, len(plaintexts), nil
}
