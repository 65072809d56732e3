package triplesec

import (
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/Redeaux-Corporation/triplesec/audit"
	"github.com/Redeaux-Corporation/triplesec/primitives"
)

// Lifecycle is the package-level audit trail that every Cipher's
// construction and Close are recorded into. It exists so the mandatory
// zeroization contract (spec §5, §9) is independently observable — an
// operator or the `triplesec report`/`new-cipher` CLI subcommands can read
// Lifecycle.Entries()/OpenCount() without either package threading its own
// parallel tracker through every call site.
var Lifecycle = audit.NewTracker()

// Subkey segment layout within the 264-byte Scrypt mega key, in the fixed
// order spec §4.2 requires.
const (
	macKey1Size    = 48
	macKey2Size    = 48
	aesKeySize     = primitives.AESKeySize
	twofishKeySize = primitives.TwofishKeySize
	xsalsaKeySize  = primitives.XSalsaKeySize
	reservedSize   = 72
)

func init() {
	const total = macKey1Size + macKey2Size + aesKeySize + twofishKeySize + xsalsaKeySize + reservedSize
	if total != primitives.MegaKeyBytes {
		panic("triplesec: subkey partition does not sum to the mega key size")
	}
}

// Cipher is an immutable handle bound to a (password, salt) pair. It holds
// the eight subkeys derived once, at construction, by Scrypt. Multiple
// encryption or decryption operations may run concurrently against the same
// Cipher provided each supplies its own IV bundle (spec §5); a Cipher must
// not be used after Close.
type Cipher struct {
	password []byte // retained only to support newCipherWithSalt-style reuse; never logged
	salt     [16]byte

	macKey1    [macKey1Size]byte
	macKey2    [macKey2Size]byte
	aesKey     [aesKeySize]byte
	twofishKey [twofishKeySize]byte
	xsalsaKey  [xsalsaKeySize]byte
	reserved   [reservedSize]byte

	lifecycleID uuid.UUID
	closed      bool
}

// NewCipher derives a fresh 16-byte salt, runs Scrypt, partitions the mega
// key into the eight subkeys, and returns an immutable Cipher. Fails with
// InvalidPassword if password is empty.
func NewCipher(password []byte) (*Cipher, error) {
	var salt [16]byte
	if _, _, err := drawInto(systemRNG, salt[:]); err != nil {
		return nil, newEncErr(RngFailure, err)
	}
	return newCipher(password, salt)
}

// NewCipherWithSalt builds a Cipher from a password and a caller-supplied
// 16-byte salt — typically one recovered from an existing envelope via
// CheckPrefix. Semantically identical to newCipher; the distinct name
// emphasizes that the caller already knows the salt (spec §4.2).
func NewCipherWithSalt(password []byte, salt [16]byte) (*Cipher, error) {
	return newCipher(password, salt)
}

// NewCipherWithSaltBytes is NewCipherWithSalt's variable-length-input
// sibling, for callers that only hold salt bytes of unknown provenance —
// e.g. a hex value pasted into a CLI recovery flag, or a value decoded from
// an external encoding. NewCipherWithSalt's [16]byte parameter makes a
// wrong-length salt unrepresentable at the type level, so it can never
// surface InvalidSaltLength; this entry point validates the length at
// runtime instead and fails with InvalidSaltLength (spec §4.2) if saltBytes
// is not exactly 16 bytes.
func NewCipherWithSaltBytes(password, saltBytes []byte) (*Cipher, error) {
	if len(saltBytes) != 16 {
		return nil, newEncErr(InvalidSaltLength, nil)
	}
	var salt [16]byte
	copy(salt[:], saltBytes)
	return newCipher(password, salt)
}

func newCipher(password []byte, salt [16]byte) (*Cipher, error) {
	if len(password) == 0 {
		return nil, newEncErr(InvalidPassword, nil)
	}

	mega, err := primitives.DeriveMegaKey(password, salt[:])
	if err != nil {
		return nil, newEncErr(RngFailure, err)
	}
	defer zero(mega)

	c := &Cipher{
		password: append([]byte(nil), password...),
		salt:     salt,
	}
	off := 0
	off = copyAdvance(c.macKey1[:], mega, off)
	off = copyAdvance(c.macKey2[:], mega, off)
	off = copyAdvance(c.aesKey[:], mega, off)
	off = copyAdvance(c.twofishKey[:], mega, off)
	off = copyAdvance(c.xsalsaKey[:], mega, off)
	copyAdvance(c.reserved[:], mega, off)

	c.lifecycleID = Lifecycle.RecordConstruction(hex.EncodeToString(salt[:4]), "")

	return c, nil
}

func copyAdvance(dst, src []byte, off int) int {
	n := copy(dst, src[off:])
	return off + n
}

// Salt returns the 16-byte salt this Cipher was derived with.
func (c *Cipher) Salt() [16]byte { return c.salt }

// Close zeroizes every derived subkey and the retained password, and
// records the closure in Lifecycle. The zeroization contract is mandatory
// (spec §5, §9); a Cipher must not be used after Close.
func (c *Cipher) Close() {
	if c.closed {
		return
	}
	zero(c.password)
	zero(c.macKey1[:])
	zero(c.macKey2[:])
	zero(c.aesKey[:])
	zero(c.twofishKey[:])
	zero(c.xsalsaKey[:])
	zero(c.reserved[:])
	c.closed = true
	Lifecycle.RecordClose(c.lifecycleID)
}

// zero overwrites b with zero bytes. It is a best-effort defense-in-depth
// measure, not a guarantee against a sufficiently motivated compiler or a
// swapped-to-disk page.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
