package triplesec

import (
	"github.com/Redeaux-Corporation/triplesec/primitives"
	"github.com/Redeaux-Corporation/triplesec/rng"
)

var systemRNG rng.Source = rng.System{}

// drawInto draws exactly len(buf) bytes from src and copies them into buf,
// returning the advanced Source.
func drawInto(src rng.Source, buf []byte) (rng.Source, int, error) {
	out, next, err := src.Draw(len(buf))
	if err != nil {
		return nil, 0, err
	}
	n := copy(buf, out)
	return next, n, nil
}

func drawIVBundle(src rng.Source) (ivBundle, rng.Source, error) {
	var ivs ivBundle
	var err error
	if src, _, err = drawInto(src, ivs.aes[:]); err != nil {
		return ivBundle{}, nil, err
	}
	if src, _, err = drawInto(src, ivs.twofish[:]); err != nil {
		return ivBundle{}, nil, err
	}
	if src, _, err = drawInto(src, ivs.salsa[:]); err != nil {
		return ivBundle{}, nil, err
	}
	return ivs, src, nil
}

// authenticatedData assembles the prefix that both MACs are computed over:
// magic ‖ version ‖ salt ‖ iv_aes ‖ iv_twofish ‖ iv_salsa ‖ body. Binding the
// salt and every IV into the MAC input prevents cross-envelope substitution
// (spec §4.4 rationale).
func authenticatedData(salt [16]byte, ivs ivBundle, body []byte) []byte {
	buf := make([]byte, 0, magicSize+versionSize+saltSize+ivAESSize+ivTwofish+ivSalsa+len(body))
	buf = append(buf, magicBytes[:]...)
	var verBytes [4]byte
	verBytes[0] = byte(Version >> 24)
	verBytes[1] = byte(Version >> 16)
	verBytes[2] = byte(Version >> 8)
	verBytes[3] = byte(Version)
	buf = append(buf, verBytes[:]...)
	buf = append(buf, salt[:]...)
	buf = append(buf, ivs.aes[:]...)
	buf = append(buf, ivs.twofish[:]...)
	buf = append(buf, ivs.salsa[:]...)
	buf = append(buf, body...)
	return buf
}

// EncryptWithCipher runs the three-layer cascade over plaintext using an
// already-derived Cipher and emits a framed envelope (spec §4.4). It draws a
// fresh IV bundle from src; if src is a Deterministic generator, the
// returned Source reflects its advanced state — callers using System may
// discard it.
func EncryptWithCipher(c *Cipher, plaintext []byte, src rng.Source) ([]byte, rng.Source, error) {
	if len(plaintext) == 0 {
		return nil, nil, newEncErr(ZeroLengthPlaintext, nil)
	}

	ivs, next, err := drawIVBundle(src)
	if err != nil {
		return nil, nil, newEncErr(RngFailure, err)
	}

	c1, err := primitives.XSalsa20(c.xsalsaKey[:], ivs.salsa[:], plaintext)
	if err != nil {
		return nil, nil, newEncErr(RngFailure, err)
	}
	c2, err := primitives.Twofish256CTR(c.twofishKey[:], ivs.twofish[:], c1)
	if err != nil {
		return nil, nil, newEncErr(RngFailure, err)
	}
	c3, err := primitives.AES256CTR(c.aesKey[:], ivs.aes[:], c2)
	if err != nil {
		return nil, nil, newEncErr(RngFailure, err)
	}

	ad := authenticatedData(c.salt, ivs, c3)
	mac1 := primitives.HMACSHA512(c.macKey1[:], ad)
	mac2 := primitives.HMACSHA3_512(c.macKey2[:], ad)

	envelope := encodeHeader(c.salt, mac1, mac2, ivs)
	envelope = append(envelope, c3...)
	return envelope, next, nil
}

// DecryptWithCipher inverts the layered pipeline (spec §4.4). Salt mismatch
// is checked before any MAC work so that batch-API misuse is reported
// distinctly from forgery; both MACs are verified in constant time before
// any inverse cipher work commits.
func DecryptWithCipher(c *Cipher, envelope []byte) ([]byte, error) {
	h, err := parseHeader(envelope)
	if err != nil {
		return nil, err
	}
	if h.Salt != c.salt {
		return nil, newDecErr(MisMatchedCipherSalt, nil)
	}

	body := envelope[HeaderSize:]
	ad := authenticatedData(c.salt, h.IVs, body)
	mac1 := primitives.HMACSHA512(c.macKey1[:], ad)
	mac2 := primitives.HMACSHA3_512(c.macKey2[:], ad)

	mac1OK := primitives.ConstantTimeEqual(mac1, h.MAC1[:])
	mac2OK := primitives.ConstantTimeEqual(mac2, h.MAC2[:])
	if !mac1OK || !mac2OK {
		return nil, newDecErr(MacMismatch, nil)
	}

	p2, err := primitives.AES256CTR(c.aesKey[:], h.IVs.aes[:], body)
	if err != nil {
		return nil, newDecErr(InvalidCiphertext, err)
	}
	p1, err := primitives.Twofish256CTR(c.twofishKey[:], h.IVs.twofish[:], p2)
	if err != nil {
		return nil, newDecErr(InvalidCiphertext, err)
	}
	plaintext, err := primitives.XSalsa20(c.xsalsaKey[:], h.IVs.salsa[:], p1)
	if err != nil {
		return nil, newDecErr(InvalidCiphertext, err)
	}
	return plaintext, nil
}
