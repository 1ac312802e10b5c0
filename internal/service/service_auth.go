package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/doc-sentry/internal/crypto"
	"github.com/MKhiriev/doc-sentry/internal/logger"
	"github.com/MKhiriev/doc-sentry/internal/store"
	"github.com/MKhiriev/doc-sentry/models"
)

// authService is the concrete implementation of AuthService.
// It handles local account registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing. Credential
// hashing is one-way and entirely independent of the cipher: a login
// password is never used as an encryption secret.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// credentials hashes and verifies login passwords.
	credentials crypto.CredentialService

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and CredentialService.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, credentials crypto.CredentialService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		credentials:    credentials,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that both username and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.credentials.HashPassword(password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and verifies the supplied password
// against the stored bcrypt hash. On success the login time is recorded;
// a failure to record it is logged and ignored.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.credentials.VerifyPassword(password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	now := time.Now()
	if err := a.userRepository.TouchLastLogin(ctx, foundUser.UserID, now); err != nil {
		log.Warn().Err(err).
			Int64("id", foundUser.UserID).
			Msg("failed to record login time")
	} else {
		foundUser.LastLogin = &now
	}

	return foundUser, nil
}

// ChangePassword verifies the old password and replaces the stored hash with
// a hash of the new one. No stored encrypted data is affected: the login
// password is never used as an encryption secret.
//
// Returns:
//   - ErrInvalidDataProvided if any argument is empty.
//   - A wrapped storage error if lookup or update fails.
//   - ErrWrongPassword if the old password does not match.
func (a *authService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if username == "" || oldPassword == "" || newPassword == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.credentials.VerifyPassword(oldPassword, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return ErrWrongPassword
	}

	newHash, err := a.credentials.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, foundUser.UserID, newHash); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}
