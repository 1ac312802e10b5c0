package service

import (
	"context"

	"github.com/MKhiriev/doc-sentry/models"
)

// SessionService tracks per-document validation history. Documents are
// identified by their content hash, so a renamed or moved file keeps its
// history while a modified file starts a fresh one.
type SessionService interface {
	// Diff partitions the current issue set against the profile's stored
	// snapshot. A nil profile, or one without a stored snapshot, is a first
	// encounter and yields a zero result with empty partitions.
	Diff(ctx context.Context, profile *models.DocumentProfile, current models.ValidationResult) models.DiffResult

	// SessionDiff loads the document's stored profile and diffs the
	// current validation result against it.
	SessionDiff(ctx context.Context, path string, current models.ValidationResult) (models.DiffResult, error)

	// SaveSession persists the validation result for the document at path,
	// creating a profile on first encounter or refreshing the existing one.
	// The optional payload is encrypted before storage; pass "" for none.
	SaveSession(ctx context.Context, path string, result models.ValidationResult, payload string) (models.DocumentProfile, error)

	// GetProfile returns the stored profile for the document at path, or
	// nil when the document has never been seen. Storage failures degrade
	// to nil with a logged warning.
	GetProfile(ctx context.Context, path string) (*models.DocumentProfile, error)

	// GetPayload decrypts and returns the sensitive payload stored with
	// the document's profile, or "" when none was stored.
	GetPayload(ctx context.Context, path string) (string, error)

	// ListProfiles returns every tracked document, most recently seen
	// first. Storage failures degrade to an empty list.
	ListProfiles(ctx context.Context) []models.DocumentProfile
}

// AuditService records and reports the remediation history of documents.
type AuditService interface {
	// Append records one remediation action. Best-effort: a storage
	// failure is logged and swallowed so that audit bookkeeping can never
	// fail the action it records. Missing identifier and timestamp are
	// filled in before persistence.
	Append(ctx context.Context, entry models.AuditEntry)

	// List returns the document's audit entries, newest first. Storage
	// failures degrade to an empty list.
	List(ctx context.Context, fileHash string) []models.AuditEntry

	// Find returns entries matching every non-zero filter field, newest
	// first. Storage failures degrade to an empty list.
	Find(ctx context.Context, filter models.AuditFilter) []models.AuditEntry

	// Summarize renders the document's audit history for reporting, with
	// each action's timestamp in RFC 3339 form.
	Summarize(ctx context.Context, fileHash string) models.AuditSummary
}

// AuthService manages local user accounts and credentials.
type AuthService interface {
	// Register creates a new user account with a hashed password.
	Register(ctx context.Context, username, email, password string) (models.User, error)

	// Login verifies the user's credentials and records the login time.
	// Returns [ErrWrongPassword] when the password does not match.
	Login(ctx context.Context, username, password string) (models.User, error)

	// ChangePassword verifies the old password and stores a hash of the
	// new one.
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
}
