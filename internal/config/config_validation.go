// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// Bounds enforced by [StructuredConfig.validate]. The bcrypt limits mirror
// golang.org/x/crypto/bcrypt; the iteration floor keeps derived keys
// compatible with the persisted salt's intended work factor.
const (
	minBcryptCost = 4
	maxBcryptCost = 31

	minPasswordLength = 12
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It runs after
// defaults are applied, so every field is expected to be populated.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SaltFile == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.KDFIterations < DefaultKDFIterations {
		return ErrKDFIterationsTooLow
	}

	if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return ErrInvalidBcryptCost
	}

	if cfg.App.PasswordLength < minPasswordLength {
		return ErrPasswordLengthTooShort
	}

	return nil
}
