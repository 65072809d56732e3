package primitives

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestAES256CTRRoundTrips(t *testing.T) {
	key := make([]byte, AESKeySize)
	iv := make([]byte, AESIVSize)
	rand.Read(key)
	rand.Read(iv)

	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	ciphertext, err := AES256CTR(key, iv, plaintext)
	if err != nil {
		t.Fatalf("AES256CTR encrypt: %v", err)
	}
	if bytes.Equal(ciphertext, plaintext) {
		t.Fatal("ciphertext equals plaintext")
	}

	decrypted, err := AES256CTR(key, iv, ciphertext)
	if err != nil {
		t.Fatalf("AES256CTR decrypt: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", decrypted, plaintext)
	}
}

func TestAES256CTRRejectsWrongKeySize(t *testing.T) {
	_, err := AES256CTR(make([]byte, 16), make([]byte, AESIVSize), []byte("x"))
	if err == nil {
		t.Fatal("expected error for wrong key size")
	}
}

func TestTwofish256CTRRoundTrips(t *testing.T) {
	key := make([]byte, TwofishKeySize)
	iv := make([]byte, TwofishIVSize)
	rand.Read(key)
	rand.Read(iv)

	plaintext := []byte("message that will be encrypted")
	ciphertext, err := Twofish256CTR(key, iv, plaintext)
	if err != nil {
		t.Fatalf("Twofish256CTR encrypt: %v", err)
	}

	decrypted, err := Twofish256CTR(key, iv, ciphertext)
	if err != nil {
		t.Fatalf("Twofish256CTR decrypt: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", decrypted, plaintext)
	}
}

func TestTwofish256CTRRejectsWrongIVSize(t *testing.T) {
	_, err := Twofish256CTR(make([]byte, TwofishKeySize), make([]byte, 8), []byte("x"))
	if err == nil {
		t.Fatal("expected error for wrong iv size")
	}
}
