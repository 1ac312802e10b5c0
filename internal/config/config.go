// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
)

// Defaults applied to any field left unset by all configuration sources.
const (
	// DefaultKDFIterations is the PBKDF2-HMAC-SHA256 iteration count used
	// for key derivation. Values below this are rejected by validation;
	// deployments may only raise it.
	DefaultKDFIterations = 480_000

	// DefaultBcryptCost is the bcrypt work factor for credential hashing.
	DefaultBcryptCost = 12

	// DefaultPasswordLength is the length of generated random passwords.
	DefaultPasswordLength = 32

	// defaultDataDirName is the per-user application directory created
	// under the home directory.
	defaultDataDirName = ".doc-sentry"

	saltFileName = ".salt"
	dbFileName   = "sentry.sqlite"
)

// StructuredConfig is the top-level configuration container for the
// doc-sentry application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as key-derivation
	// parameters, credential hashing cost, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control key
// derivation, credential hashing, and versioning.
type App struct {
	// DataDir is the per-user directory holding the salt file, the local
	// database, and log output. Defaults to ~/.doc-sentry.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// SaltFile is the path of the persisted key-derivation salt.
	// Defaults to <DataDir>/.salt.
	// Env: APP_SALT_FILE
	SaltFile string `env:"SALT_FILE"`

	// KDFIterations is the PBKDF2-HMAC-SHA256 iteration count used when
	// deriving encryption keys. Must be at least [DefaultKDFIterations];
	// the setting exists so deployments can raise the work factor, never
	// lower it.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// BcryptCost is the bcrypt work factor applied when hashing user
	// passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// PasswordLength is the length of passwords produced by the password
	// generator.
	// Env: APP_PASSWORD_LENGTH
	PasswordLength int `env:"PASSWORD_LENGTH"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backends used by the
// application.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite Data Source Name used to open the database
	// (e.g. "/home/user/.doc-sentry/sentry.sqlite").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left unset by every source receive platform defaults. Returns a
// fully populated *StructuredConfig or an error if any source fails to load
// or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills every unset field with its platform default. The data
// directory anchors the derived paths: overriding APP_DATA_DIR moves the salt
// file and the database with it unless they are overridden individually.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.App.DataDir = filepath.Join(home, defaultDataDirName)
	}

	if cfg.App.SaltFile == "" {
		cfg.App.SaltFile = filepath.Join(cfg.App.DataDir, saltFileName)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(cfg.App.DataDir, dbFileName)
	}

	if cfg.App.KDFIterations == 0 {
		cfg.App.KDFIterations = DefaultKDFIterations
	}

	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}

	if cfg.App.PasswordLength == 0 {
		cfg.App.PasswordLength = DefaultPasswordLength
	}
}
