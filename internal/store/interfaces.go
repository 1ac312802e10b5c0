package store

import (
	"context"
	"time"

	"github.com/MKhiriev/doc-sentry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProfileRepository persists per-document validation profiles keyed by the
// document's content hash.
type ProfileRepository interface {
	// GetProfileByHash returns the profile stored for the given content
	// hash, or [ErrProfileNotFound] when the document has never been seen.
	GetProfileByHash(ctx context.Context, fileHash string) (models.DocumentProfile, error)

	// UpsertProfile inserts a new profile or, when one already exists for
	// the same content hash, overwrites its validation snapshot and
	// increments the session counter. Returns the canonical stored row.
	UpsertProfile(ctx context.Context, profile models.DocumentProfile) (models.DocumentProfile, error)

	// ListProfiles returns every stored profile, most recently seen first.
	ListProfiles(ctx context.Context) ([]models.DocumentProfile, error)
}

// AuditRepository persists the append-only change history of remediation
// actions applied to documents.
type AuditRepository interface {
	// AppendEntry inserts a single audit record.
	AppendEntry(ctx context.Context, entry models.AuditEntry) error

	// ListEntries returns all entries recorded for the given content hash,
	// newest first.
	ListEntries(ctx context.Context, fileHash string) ([]models.AuditEntry, error)

	// FindEntries returns entries matching every non-zero field of the
	// filter, newest first.
	FindEntries(ctx context.Context, filter models.AuditFilter) ([]models.AuditEntry, error)
}

// UserRepository persists local user accounts.
type UserRepository interface {
	// CreateUser persists a new user record and returns it with
	// server-assigned fields populated. Returns
	// [ErrUsernameAlreadyExists] on a username collision.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username, or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdatePassword replaces the stored credential hash for a user.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error

	// TouchLastLogin records a successful login time for a user.
	TouchLastLogin(ctx context.Context, userID int64, at time.Time) error
}
