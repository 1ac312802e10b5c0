// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"os"
	"os/user"
	"runtime"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 iteration count: the recommended
	// minimum for HMAC-SHA256 at design time. It may be tuned upward per
	// installation, but changing it invalidates every previously derived
	// key, so old blobs must be rotated first.
	DefaultIterations = 480_000

	// derivedKeyLen is the length of derived symmetric keys (AES-256).
	derivedKeyLen = 32
)

// keyService is the private implementation of [KeyService].
type keyService struct {
	saltStore *SaltStore

	// iterations is the PBKDF2 work factor. Stored in the struct so that it
	// can be raised per deployment target without touching old installations.
	iterations int
}

// NewKeyService constructs a [KeyService] over the given salt store using
// PBKDF2-HMAC-SHA256 with iterations as the work factor. Passing 0 selects
// [DefaultIterations].
func NewKeyService(saltStore *SaltStore, iterations int) KeyService {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &keyService{
		saltStore:  saltStore,
		iterations: iterations,
	}
}

// Derive implements [KeyService]. The key is a pure function of
// (secret, salt, iterations): it is recomputed on demand and never persisted.
func (k *keyService) Derive(secret []byte) ([]byte, error) {
	salt, err := k.saltStore.Load()
	if err != nil {
		return nil, err
	}

	return pbkdf2.Key(secret, salt, k.iterations, derivedKeyLen, sha256.New), nil
}

// MachineSecret implements [KeyService]. The digest input mirrors the
// installation fingerprint of the desktop tool: user identifier, home
// directory, host name, and operating system name, joined with ":".
// Lookup failures degrade to empty components so that the fingerprint stays
// deterministic on a given machine.
func (k *keyService) MachineSecret() []byte {
	var username string
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	home, _ := os.UserHomeDir()
	host, _ := os.Hostname()

	combined := strings.Join([]string{username, home, host, runtime.GOOS}, ":")
	digest := sha256.Sum256([]byte(combined))
	return digest[:]
}
