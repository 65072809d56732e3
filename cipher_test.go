package triplesec

import (
	"bytes"
	"fmt"
	"testing"
)

// TestNewCipherRejectsEmptyPassword verifies the InvalidPassword contract.
func TestNewCipherRejectsEmptyPassword(t *testing.T) {
	fmt.Println("Test: NewCipher rejects empty password")

	_, err := NewCipher(nil)
	if err == nil {
		t.Fatal("expected error for empty password")
	}
	var encErr *EncryptionError
	if !asEncryptionError(err, &encErr) || encErr.Kind != InvalidPassword {
		t.Fatalf("expected InvalidPassword, got %v", err)
	}

	fmt.Println("✓ empty password rejected")
}

// TestSubkeysAreDistinctAndNonZero guards against a partitioning bug that
// would silently alias two subkey segments.
func TestSubkeysAreDistinctAndNonZero(t *testing.T) {
	fmt.Println("Test: derived subkeys are distinct and non-zero")

	c, err := NewCipher([]byte("my secret password"))
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	defer c.Close()

	subkeys := [][]byte{c.macKey1[:], c.macKey2[:], c.aesKey[:], c.twofishKey[:], c.xsalsaKey[:]}
	for i, k := range subkeys {
		if bytes.Equal(k, make([]byte, len(k))) {
			t.Fatalf("subkey %d is all-zero", i)
		}
		for j := i + 1; j < len(subkeys); j++ {
			if len(k) == len(subkeys[j]) && bytes.Equal(k, subkeys[j]) {
				t.Fatalf("subkeys %d and %d are identical", i, j)
			}
		}
	}

	fmt.Println("✓ subkeys distinct and non-zero")
}

// TestCloseZeroizesSubkeys verifies the mandatory zeroization contract
// (spec §5, §9).
func TestCloseZeroizesSubkeys(t *testing.T) {
	fmt.Println("Test: Close zeroizes subkeys")

	c, err := NewCipher([]byte("my secret password"))
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	c.Close()

	zeros := make([]byte, 48)
	if !bytes.Equal(c.macKey1[:], zeros) {
		t.Fatal("macKey1 not zeroized after Close")
	}
	if !bytes.Equal(c.aesKey[:], make([]byte, 32)) {
		t.Fatal("aesKey not zeroized after Close")
	}
	if !bytes.Equal(c.password, make([]byte, len(c.password))) {
		t.Fatal("password not zeroized after Close")
	}

	fmt.Println("✓ subkeys zeroized")
}

// TestSameSaltSamePasswordSameSubkeys: construction is a pure function of
// (password, salt) — two Ciphers built from the same pair must derive
// identical subkeys, which is what makes newCipherWithSalt a correct way to
// recover a batch's Cipher.
func TestSameSaltSamePasswordSameSubkeys(t *testing.T) {
	fmt.Println("Test: same (password, salt) yields identical subkeys")

	salt := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	c1, err := NewCipherWithSalt([]byte("mypassword"), salt)
	if err != nil {
		t.Fatalf("NewCipherWithSalt: %v", err)
	}
	defer c1.Close()
	c2, err := NewCipherWithSalt([]byte("mypassword"), salt)
	if err != nil {
		t.Fatalf("NewCipherWithSalt: %v", err)
	}
	defer c2.Close()

	if c1.aesKey != c2.aesKey || c1.twofishKey != c2.twofishKey || c1.xsalsaKey != c2.xsalsaKey {
		t.Fatal("subkeys differ for identical (password, salt)")
	}

	fmt.Println("✓ identical subkeys for identical (password, salt)")
}

// TestNewCipherWithSaltBytesRejectsWrongLength verifies the InvalidSaltLength
// contract (spec §4.2), which NewCipherWithSalt's [16]byte parameter cannot
// itself exercise.
func TestNewCipherWithSaltBytesRejectsWrongLength(t *testing.T) {
	fmt.Println("Test: NewCipherWithSaltBytes rejects a wrong-length salt")

	for _, n := range []int{0, 1, 15, 17, 32} {
		_, err := NewCipherWithSaltBytes([]byte("mypassword"), make([]byte, n))
		if err == nil {
			t.Fatalf("expected error for %d-byte salt", n)
		}
		var encErr *EncryptionError
		if !asEncryptionError(err, &encErr) || encErr.Kind != InvalidSaltLength {
			t.Fatalf("expected InvalidSaltLength for %d-byte salt, got %v", n, err)
		}
	}

	fmt.Println("✓ wrong-length salt rejected")
}

// TestNewCipherWithSaltBytesMatchesFixedArrayForm verifies
// NewCipherWithSaltBytes derives the same subkeys as NewCipherWithSalt when
// given a valid 16-byte salt, i.e. it's a pure validating wrapper and not a
// second derivation path.
func TestNewCipherWithSaltBytesMatchesFixedArrayForm(t *testing.T) {
	fmt.Println("Test: NewCipherWithSaltBytes matches NewCipherWithSalt for a valid salt")

	salt := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	c1, err := NewCipherWithSalt([]byte("mypassword"), salt)
	if err != nil {
		t.Fatalf("NewCipherWithSalt: %v", err)
	}
	defer c1.Close()
	c2, err := NewCipherWithSaltBytes([]byte("mypassword"), salt[:])
	if err != nil {
		t.Fatalf("NewCipherWithSaltBytes: %v", err)
	}
	defer c2.Close()

	if c1.aesKey != c2.aesKey || c1.twofishKey != c2.twofishKey || c1.xsalsaKey != c2.xsalsaKey {
		t.Fatal("NewCipherWithSaltBytes derived different subkeys than NewCipherWithSalt")
	}

	fmt.Println("✓ matches fixed-array form")
}

// TestCloseRecordsLifecycle verifies Close's audit-lifecycle recording
// contract: after construction, OpenCount reflects the new Cipher; after
// Close, it no longer does.
func TestCloseRecordsLifecycle(t *testing.T) {
	fmt.Println("Test: Close records the lifecycle event")

	before := Lifecycle.OpenCount()
	c, err := NewCipher([]byte("my secret password"))
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}
	if got := Lifecycle.OpenCount(); got != before+1 {
		t.Fatalf("expected OpenCount %d after construction, got %d", before+1, got)
	}

	c.Close()
	if got := Lifecycle.OpenCount(); got != before {
		t.Fatalf("expected OpenCount %d after Close, got %d", before, got)
	}

	// Close must be idempotent: a second call must not double-decrement.
	c.Close()
	if got := Lifecycle.OpenCount(); got != before {
		t.Fatalf("expected OpenCount %d after second Close, got %d", before, got)
	}

	fmt.Println("✓ lifecycle recorded across construction and Close")
}

func asEncryptionError(err error, target **EncryptionError) bool {
	e, ok := err.(*EncryptionError)
	if ok {
		*target = e
	}
	return ok
}
