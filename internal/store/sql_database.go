package store

import (
	"database/sql"

	"github.com/MKhiriev/doc-sentry/internal/logger"
	"github.com/MKhiriev/doc-sentry/migrations"
)

// DB wraps the sql.DB handle of the local database.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations. Called once at startup.
func (db *DB) Migrate() error {
	return migrations.Up(db.DB)
}
