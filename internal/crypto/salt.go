// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/doc-sentry/internal/logger"
)

// saltSize is the length of the persisted key-derivation salt in bytes.
const saltSize = 16

// SaltStore manages the installation's persistent key-derivation salt: a
// fixed-location file holding exactly 16 raw bytes, generated once from the
// OS CSPRNG and reused for every derivation thereafter.
//
// Losing or rotating this salt makes all previously encrypted data
// permanently undecryptable with the same secret. Concurrent first-run
// creation by two processes is out of scope; the store is assumed to have a
// single writer at installation time.
type SaltStore struct {
	path   string
	logger *logger.Logger
}

// NewSaltStore constructs a SaltStore over the salt file at path.
func NewSaltStore(path string, log *logger.Logger) *SaltStore {
	return &SaltStore{path: path, logger: log}
}

// Load returns the persisted salt, generating and persisting it first if the
// file does not exist yet. The salt is persisted before first use so that a
// crash between generation and write can never orphan derived keys.
//
// Returns [ErrSaltCorrupted] if the file exists but is not exactly 16 bytes.
func (s *SaltStore) Load() ([]byte, error) {
	salt, err := os.ReadFile(s.path)
	if err == nil {
		if len(salt) != saltSize {
			s.logger.Error().
				Str("func", "*SaltStore.Load").
				Str("path", s.path).
				Int("size", len(salt)).
				Msg("salt file has wrong size")
			return nil, fmt.Errorf("%w: %d bytes at %s, want %d", ErrSaltCorrupted, len(salt), s.path, saltSize)
		}
		return salt, nil
	}
	if !os.IsNotExist(err) {
		s.logger.Err(err).Str("func", "*SaltStore.Load").Str("path", s.path).Msg("error reading salt file")
		return nil, fmt.Errorf("error reading salt file: %w", err)
	}

	return s.create()
}

// create generates a fresh salt and persists it with owner-only permissions.
func (s *SaltStore) create() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("error generating salt: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		s.logger.Err(err).Str("func", "*SaltStore.create").Str("path", s.path).Msg("error creating salt directory")
		return nil, fmt.Errorf("error creating salt directory: %w", err)
	}

	if err := os.WriteFile(s.path, salt, 0600); err != nil {
		s.logger.Err(err).Str("func", "*SaltStore.create").Str("path", s.path).Msg("error persisting salt file")
		return nil, fmt.Errorf("error persisting salt file: %w", err)
	}

	s.logger.Debug().Str("func", "*SaltStore.create").Str("path", s.path).Msg("generated new installation salt")
	return salt, nil
}
