package triplesec

import "fmt"

// EncryptionErrorKind enumerates the ways an encryption-side call can fail
// (spec §7).
type EncryptionErrorKind int

const (
	// ZeroLengthPlaintext is returned when the plaintext is empty.
	ZeroLengthPlaintext EncryptionErrorKind = iota
	// InvalidPassword is returned when the password is empty.
	InvalidPassword
	// InvalidSaltLength is returned when a caller-supplied salt is not 16 bytes.
	InvalidSaltLength
	// RngFailure is returned when the RNG source could not deliver bytes.
	RngFailure
)

func (k EncryptionErrorKind) String() string {
	switch k {
	case ZeroLengthPlaintext:
		return "ZeroLengthPlaintext"
	case InvalidPassword:
		return "InvalidPassword"
	case InvalidSaltLength:
		return "InvalidSaltLength"
	case RngFailure:
		return "RngFailure"
	default:
		return "UnknownEncryptionError"
	}
}

// EncryptionError is the tagged-result error type for every encryption-side
// failure in the package. It is never thrown internally — callers receive it
// as an ordinary error return.
type EncryptionError struct {
	Kind EncryptionErrorKind
	Err  error // underlying cause, if any (e.g. RngFailure)
}

func (e *EncryptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("triplesec: encryption error (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("triplesec: encryption error (%s)", e.Kind)
}

func (e *EncryptionError) Unwrap() error { return e.Err }

func newEncErr(kind EncryptionErrorKind, cause error) *EncryptionError {
	return &EncryptionError{Kind: kind, Err: cause}
}

// DecryptionErrorKind enumerates the ways a decryption-side call can fail
// (spec §7).
type DecryptionErrorKind int

const (
	// InvalidCiphertext is returned when the envelope is too short, has a
	// bad magic, or an unsupported version.
	InvalidCiphertext DecryptionErrorKind = iota
	// MisMatchedCipherSalt is returned when an envelope's salt does not
	// match the Cipher supplied to decryptWithCipher.
	MisMatchedCipherSalt
	// MacMismatch is returned when constant-time MAC verification fails.
	MacMismatch
)

func (k DecryptionErrorKind) String() string {
	switch k {
	case InvalidCiphertext:
		return "InvalidCiphertext"
	case MisMatchedCipherSalt:
		return "MisMatchedCipherSalt"
	case MacMismatch:
		return "MacMismatch"
	default:
		return "UnknownDecryptionError"
	}
}

// DecryptionError is the tagged-result error type for every decryption-side
// failure.
type DecryptionError struct {
	Kind DecryptionErrorKind
	Err  error
}

func (e *DecryptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("triplesec: decryption error (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("triplesec: decryption error (%s)", e.Kind)
}

func (e *DecryptionError) Unwrap() error { return e.Err }

func newDecErr(kind DecryptionErrorKind, cause error) *DecryptionError {
	return &DecryptionError{Kind: kind, Err: cause}
}
