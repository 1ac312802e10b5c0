package store

import (
	"github.com/MKhiriev/doc-sentry/internal/logger"
)

// Storages bundles every repository backed by the local database, ready to be
// handed to the service layer.
type Storages struct {
	ProfileRepository ProfileRepository
	AuditRepository   AuditRepository
	UserRepository    UserRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		ProfileRepository: NewProfileRepository(db, logger),
		AuditRepository:   NewAuditRepository(db, logger),
		UserRepository:    NewUserRepository(db, logger),
	}
}
