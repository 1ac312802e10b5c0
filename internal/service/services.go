package service

import (
	"github.com/MKhiriev/doc-sentry/internal/crypto"
	"github.com/MKhiriev/doc-sentry/internal/logger"
	"github.com/MKhiriev/doc-sentry/internal/store"
)

type Services struct {
	SessionService SessionService
	AuditService   AuditService
	AuthService    AuthService
}

func NewServices(storages *store.Storages, cipher crypto.CipherService, credentials crypto.CredentialService, logger *logger.Logger) *Services {
	return &Services{
		SessionService: NewSessionService(storages.ProfileRepository, cipher, logger),
		AuditService:   NewAuditService(storages.AuditRepository, logger),
		AuthService:    NewAuthService(storages.UserRepository, credentials, logger),
	}
}
