package primitives

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestXSalsa20RoundTrips(t *testing.T) {
	key := make([]byte, XSalsaKeySize)
	nonce := make([]byte, XSalsaNonceSize)
	rand.Read(key)
	rand.Read(nonce)

	plaintext := []byte("meet at the usual place")
	ciphertext, err := XSalsa20(key, nonce, plaintext)
	if err != nil {
		t.Fatalf("XSalsa20 encrypt: %v", err)
	}
	if bytes.Equal(ciphertext, plaintext) {
		t.Fatal("ciphertext equals plaintext")
	}

	decrypted, err := XSalsa20(key, nonce, ciphertext)
	if err != nil {
		t.Fatalf("XSalsa20 decrypt: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", decrypted, plaintext)
	}
}

func TestXSalsa20RejectsWrongNonceSize(t *testing.T) {
	_, err := XSalsa20(make([]byte, XSalsaKeySize), make([]byte, 12), []byte("x"))
	if err == nil {
		t.Fatal("expected error for wrong nonce size")
	}
}
