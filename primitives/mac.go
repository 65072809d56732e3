package primitives

import (
	"crypto/hmac"
	"crypto/sha512"
	"crypto/subtle"

	"golang.org/x/crypto/sha3"
)

// MACSize is the output size of both MAC algorithms used by TripleSec v3.
const MACSize = 64

// HMACSHA512 computes a 64-byte HMAC-SHA-512 tag over data using key.
func HMACSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// HMACSHA3_512 computes a 64-byte HMAC-SHA3-512 tag over data using key.
func HMACSHA3_512(key, data []byte) []byte {
	mac := hmac.New(sha3.New512, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// ConstantTimeEqual reports whether a and b are equal without branching on
// the position of the first differing byte. Both MACs in the v3 envelope
// must be checked this way so a timing side channel cannot distinguish a
// wrong-salt envelope from a forged one (spec: MAC comparison policy).
func ConstantTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
