package crypto

import "errors"

// Sentinel errors returned by the crypto package. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrAuthenticationFailed is returned when decryption fails its integrity
	// check: wrong key, truncated blob, or tampered ciphertext. It is kept
	// distinct from generic I/O errors so that callers can tell "wrong
	// password" apart from "disk error".
	ErrAuthenticationFailed = errors.New("authentication failed: wrong key or corrupted data")

	// ErrSaltCorrupted is returned when the persisted salt file exists but
	// does not contain exactly 16 bytes. A corrupted salt makes every
	// previously encrypted blob undecryptable, so this is never silently
	// repaired.
	ErrSaltCorrupted = errors.New("persisted salt is corrupted")
)
