package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN — the salt and
	// the profile store must survive restarts).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing salt file path).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrKDFIterationsTooLow indicates a PBKDF2 iteration count below the
	// supported minimum. The work factor may be raised, never lowered.
	ErrKDFIterationsTooLow = errors.New("kdf iterations below supported minimum")
	// ErrInvalidBcryptCost indicates a bcrypt cost outside the range the
	// bcrypt implementation accepts.
	ErrInvalidBcryptCost = errors.New("bcrypt cost out of range")
	// ErrPasswordLengthTooShort indicates a generated-password length too
	// short to be useful as an encryption secret.
	ErrPasswordLengthTooShort = errors.New("generated password length too short")
)
