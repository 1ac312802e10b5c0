// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor for login password hashing.
const DefaultBcryptCost = 12

// credentialService is the private implementation of [CredentialService],
// backed by bcrypt. Each hash embeds its own random salt; the installation
// salt used for key derivation is never involved here.
type credentialService struct {
	cost int
}

// NewCredentialService constructs a [CredentialService] with the given
// bcrypt cost. Passing 0 selects [DefaultBcryptCost].
func NewCredentialService(cost int) CredentialService {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return &credentialService{cost: cost}
}

// HashPassword implements [CredentialService].
func (c *credentialService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword implements [CredentialService]. Any comparison failure —
// wrong password, malformed hash, foreign hash format — yields false.
func (c *credentialService) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
