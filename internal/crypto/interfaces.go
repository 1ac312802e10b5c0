package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyService turns a secret into a fixed-length symmetric key using the
// installation's persistent salt. It knows nothing about storage or
// documents; its only job is deterministic key material.
//
// Derivation scheme:
//
//	salt = SaltStore.Load()                       (16 bytes, persisted once)
//	key  = PBKDF2-HMAC-SHA256(secret, salt, N)    (32 bytes, never persisted)
//
// The same (secret, salt, N) always yields the same key, so two independent
// instances over the same salt file derive identical keys.
type KeyService interface {
	// Derive computes the 32-byte symmetric key for secret. The salt is
	// loaded (or created on first run) from the persistent salt store.
	Derive(secret []byte) ([]byte, error)

	// MachineSecret returns the machine-bound fallback secret used when no
	// explicit password is supplied: the SHA-256 digest of the current user
	// identifier, home directory, host name, and operating system name.
	//
	// This value is deterministic per machine/user but it is NOT a secret.
	// It protects against casual file copying only; a local attacker with
	// account access can recompute it. Callers presenting encryption to
	// users must not describe the fallback as equivalent to a password.
	MachineSecret() []byte
}

// CipherService provides authenticated encryption of byte payloads plus
// convenience wrappers for strings and files. All output blobs are
// AES-256-GCM: nonce ‖ ciphertext+tag, no plaintext metadata.
type CipherService interface {
	// Encrypt seals plaintext under the service's derived key.
	// Failures always propagate; a swallowed encryption failure could create
	// a false sense of confidentiality.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. Returns
	// [ErrAuthenticationFailed] when the integrity tag does not verify —
	// it never returns garbage plaintext.
	Decrypt(blob []byte) ([]byte, error)

	// EncryptString seals text and returns the blob base64-encoded for
	// storage in text fields.
	EncryptString(text string) (string, error)

	// DecryptString reverses EncryptString.
	DecryptString(encoded string) (string, error)

	// EncryptFile reads inputPath fully, seals the content, and writes the
	// blob to outputPath. When outputPath is empty, ".enc" is appended to
	// the input path. File handles are released on every exit path.
	EncryptFile(inputPath, outputPath string) (string, error)

	// DecryptFile reverses EncryptFile. When outputPath is empty, a ".enc"
	// suffix is stripped from the input path, or ".dec" appended otherwise.
	DecryptFile(inputPath, outputPath string) (string, error)

	// Verify probes whether blob decrypts under the current key. The
	// underlying failure is swallowed; Verify never returns an error.
	Verify(blob []byte) bool
}

// CredentialService is one-way adaptive hashing of login passwords. It is
// independent of CipherService: credential hashes are not reversible and
// never yield key material.
type CredentialService interface {
	// HashPassword hashes password with a per-password random salt embedded
	// in the resulting hash string.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether password matches hash. Malformed or
	// foreign hash input yields false, never an error.
	VerifyPassword(password, hash string) bool
}
