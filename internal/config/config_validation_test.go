package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DataDir:        "/var/lib/doc-sentry",
			SaltFile:       "/var/lib/doc-sentry/.salt",
			KDFIterations:  DefaultKDFIterations,
			BcryptCost:     DefaultBcryptCost,
			PasswordLength: DefaultPasswordLength,
		},
		Storage: Storage{DB: DB{DSN: "/var/lib/doc-sentry/sentry.sqlite"}},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().validate())
}

func TestValidate_EmptyDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_InMemoryDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = "file::memory:?cache=shared"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_MissingSaltFile(t *testing.T) {
	cfg := validConfig()
	cfg.App.SaltFile = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestValidate_KDFIterations(t *testing.T) {
	tests := []struct {
		name       string
		iterations int
		wantErr    error
	}{
		{"at floor", DefaultKDFIterations, nil},
		{"above floor", 1_000_000, nil},
		{"below floor", DefaultKDFIterations - 1, ErrKDFIterationsTooLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.KDFIterations = tt.iterations

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_BcryptCostOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.App.BcryptCost = 3
	assert.ErrorIs(t, cfg.validate(), ErrInvalidBcryptCost)

	cfg.App.BcryptCost = 32
	assert.ErrorIs(t, cfg.validate(), ErrInvalidBcryptCost)
}

func TestValidate_PasswordLengthTooShort(t *testing.T) {
	cfg := validConfig()
	cfg.App.PasswordLength = 8
	assert.ErrorIs(t, cfg.validate(), ErrPasswordLengthTooShort)
}

func TestApplyDefaults_DataDirAnchorsPaths(t *testing.T) {
	cfg := &StructuredConfig{App: App{DataDir: "/custom/dir"}}
	cfg.applyDefaults()

	assert.Equal(t, "/custom/dir/.salt", cfg.App.SaltFile)
	assert.Equal(t, "/custom/dir/sentry.sqlite", cfg.Storage.DB.DSN)
}

func TestApplyDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.App.KDFIterations = 750_000
	cfg.applyDefaults()

	assert.Equal(t, 750_000, cfg.App.KDFIterations)
	assert.Equal(t, "/var/lib/doc-sentry/.salt", cfg.App.SaltFile)
}
