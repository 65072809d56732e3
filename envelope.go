package triplesec

import (
	"encoding/binary"

	"github.com/Redeaux-Corporation/triplesec/primitives"
)

// Envelope field widths and offsets (spec §6).
const (
	magicSize   = 4
	versionSize = 4
	saltSize    = 16
	ivAESSize   = primitives.AESIVSize     // 16
	ivTwofish   = primitives.TwofishIVSize // 16
	ivSalsa     = primitives.XSalsaNonceSize

	// HeaderSize is the total fixed-length prefix of every envelope:
	// magic ‖ version ‖ salt ‖ mac1 ‖ mac2 ‖ iv_aes ‖ iv_twofish ‖ iv_salsa.
	HeaderSize = magicSize + versionSize + saltSize + primitives.MACSize*2 + ivAESSize + ivTwofish + ivSalsa

	offMagic   = 0
	offVersion = offMagic + magicSize
	offSalt    = offVersion + versionSize
	offMAC1    = offSalt + saltSize
	offMAC2    = offMAC1 + primitives.MACSize
	offIVAES   = offMAC2 + primitives.MACSize
	offIVTwo   = offIVAES + ivAESSize
	offIVSalsa = offIVTwo + ivTwofish
	offBody    = offIVSalsa + ivSalsa
)

// Version is the TripleSec protocol version this package implements.
const Version uint32 = 3

// magicBytes is the fixed 4-byte envelope magic (spec §6).
var magicBytes = [magicSize]byte{0x1C, 0x94, 0xD7, 0xDE}

// ivBundle holds the three IVs drawn fresh for every message.
type ivBundle struct {
	aes     [ivAESSize]byte
	twofish [ivTwofish]byte
	salsa   [ivSalsa]byte
}

// IVBundle is the exported form of ivBundle: the three per-message IVs
// parsed from an envelope header (spec §3 "IV bundle") — 16 bytes for
// AES-CTR, 16 for Twofish-CTR, 24 for XSalsa20. CheckPrefix returns one
// alongside the salt, since §4.3 specifies checkPrefix to return "header-
// fields parsed" and the IVs are header fields, same as the salt.
type IVBundle struct {
	AES     [ivAESSize]byte
	Twofish [ivTwofish]byte
	Salsa   [ivSalsa]byte
}

func exportIVBundle(ivs ivBundle) IVBundle {
	return IVBundle{AES: ivs.aes, Twofish: ivs.twofish, Salsa: ivs.salsa}
}

// header is the fully parsed, unverified fixed-length prefix of an envelope.
// parseHeader returns one of these without performing any MAC verification.
type header struct {
	Version uint32
	Salt    [saltSize]byte
	MAC1    [64]byte
	MAC2    [64]byte
	IVs     ivBundle
}

// encodeHeader assembles the fixed-length envelope prefix.
func encodeHeader(salt [saltSize]byte, mac1, mac2 []byte, ivs ivBundle) []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[offMagic:], magicBytes[:])
	binary.BigEndian.PutUint32(buf[offVersion:], Version)
	copy(buf[offSalt:], salt[:])
	copy(buf[offMAC1:], mac1)
	copy(buf[offMAC2:], mac2)
	copy(buf[offIVAES:], ivs.aes[:])
	copy(buf[offIVTwo:], ivs.twofish[:])
	copy(buf[offIVSalsa:], ivs.salsa[:])
	return buf
}

// CheckPrefix parses an envelope's fixed-length header without performing
// any MAC verification, per spec §4.3. It fails with InvalidCiphertext if
// the envelope is too short, the magic does not match, or the version is
// unsupported.
//
// It returns the parsed salt, the parsed IV bundle, and the length of the
// remaining (encrypted) body, so a caller can inspect an envelope — e.g. to
// recover the salt for newCipherWithSalt — without constructing a Cipher or
// attempting to decrypt.
func CheckPrefix(envelope []byte) (salt [16]byte, ivs IVBundle, bodyLen int, err error) {
	h, err := parseHeader(envelope)
	if err != nil {
		return [16]byte{}, IVBundle{}, 0, err
	}
	return h.Salt, exportIVBundle(h.IVs), len(envelope) - HeaderSize, nil
}

func parseHeader(envelope []byte) (*header, error) {
	if len(envelope) < HeaderSize {
		return nil, newDecErr(InvalidCiphertext, nil)
	}
	if [magicSize]byte(envelope[offMagic:offMagic+magicSize]) != magicBytes {
		return nil, newDecErr(InvalidCiphertext, nil)
	}
	version := binary.BigEndian.Uint32(envelope[offVersion:])
	if version != Version {
		return nil, newDecErr(InvalidCiphertext, nil)
	}

	h := &header{Version: version}
	copy(h.Salt[:], envelope[offSalt:offSalt+saltSize])
	copy(h.MAC1[:], envelope[offMAC1:offMAC1+primitives.MACSize])
	copy(h.MAC2[:], envelope[offMAC2:offMAC2+primitives.MACSize])
	copy(h.IVs.aes[:], envelope[offIVAES:offIVAES+ivAESSize])
	copy(h.IVs.twofish[:], envelope[offIVTwo:offIVTwo+ivTwofish])
	copy(h.IVs.salsa[:], envelope[offIVSalsa:offIVSalsa+ivSalsa])
	return h, nil
}
