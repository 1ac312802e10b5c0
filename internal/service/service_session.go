package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/MKhiriev/doc-sentry/internal/crypto"
	"github.com/MKhiriev/doc-sentry/internal/identity"
	"github.com/MKhiriev/doc-sentry/internal/logger"
	"github.com/MKhiriev/doc-sentry/internal/store"
	"github.com/MKhiriev/doc-sentry/models"
)

// sessionService is the concrete implementation of SessionService.
// It compares validation passes across sessions and persists per-document
// profiles keyed by content hash, using a ProfileRepository for persistence
// and a CipherService for optional payload encryption.
//
// Profile storage is a best-effort subsystem: a read or write failure is
// logged and degraded to an empty result so that it can never abort the
// remediation session it is merely tracking.
type sessionService struct {
	// profileRepository is the data-access layer for document profiles.
	profileRepository store.ProfileRepository

	// cipher encrypts and decrypts the optional sensitive payload stored
	// alongside a profile.
	cipher crypto.CipherService

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewSessionService constructs a SessionService wired to the given
// ProfileRepository and CipherService.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSessionService(profileRepository store.ProfileRepository, cipher crypto.CipherService, logger *logger.Logger) SessionService {
	return &sessionService{
		profileRepository: profileRepository,
		cipher:            cipher,
		logger:            logger,
	}
}

// Diff partitions the current issue set against the profile's stored
// snapshot. Issue identity is (criterion, message); severity never
// participates.
//
// A nil profile means a first encounter: the result carries the current
// score, empty partitions, no previous score, and session count 0. A profile
// without a stored snapshot (empty column, legacy row) counts as a first
// encounter too — there is no previous session to compare against. An
// unparsable stored snapshot is treated as an empty previous set — the
// session degrades to "everything is new" rather than failing.
func (s *sessionService) Diff(ctx context.Context, profile *models.DocumentProfile, current models.ValidationResult) models.DiffResult {
	log := logger.FromContext(ctx)

	result := models.DiffResult{CurrentScore: current.Score}
	if profile == nil || profile.LastIssuesJSON == "" {
		return result
	}

	previousScore := profile.LastScore
	result.IsReturning = true
	result.PreviousScore = &previousScore
	result.SessionCount = profile.SessionCount

	previousKeys := s.snapshotKeys(profile, log)
	previousSet := make(map[models.IssueKey]struct{}, len(previousKeys))
	for _, key := range previousKeys {
		previousSet[key] = struct{}{}
	}

	currentSet := make(map[models.IssueKey]struct{}, len(current.Issues))
	for _, issue := range current.Issues {
		key := issue.Key()
		if _, dup := currentSet[key]; dup {
			continue
		}
		currentSet[key] = struct{}{}

		if _, ok := previousSet[key]; ok {
			result.PersistentIssues = append(result.PersistentIssues, key)
		} else {
			result.NewIssues = append(result.NewIssues, key)
		}
	}

	for _, key := range previousKeys {
		if _, ok := currentSet[key]; !ok {
			result.ResolvedIssues = append(result.ResolvedIssues, key)
		}
	}

	return result
}

// SessionDiff loads the stored profile for the document at path and diffs
// the current validation result against it. Returns an error only when the
// file itself cannot be hashed.
func (s *sessionService) SessionDiff(ctx context.Context, path string, current models.ValidationResult) (models.DiffResult, error) {
	profile, err := s.GetProfile(ctx, path)
	if err != nil {
		return models.DiffResult{}, err
	}

	return s.Diff(ctx, profile, current), nil
}

// SaveSession persists the validation result for the document at path. The
// upsert is keyed strictly by content hash: the first encounter creates a
// profile with session count 1, every later save of the same bytes refreshes
// the snapshot and increments the counter, regardless of where the file now
// lives.
//
// A non-empty payload is encrypted before storage; encryption failures
// propagate, storage failures degrade to a zero profile with a logged
// warning.
func (s *sessionService) SaveSession(ctx context.Context, path string, result models.ValidationResult, payload string) (models.DocumentProfile, error) {
	log := logger.FromContext(ctx)

	hash, err := identity.ContentHash(path)
	if err != nil {
		log.Err(err).Str("func", "*sessionService.SaveSession").Str("path", path).Msg("failed to hash document content")
		return models.DocumentProfile{}, fmt.Errorf("failed to hash document content: %w", err)
	}

	issuesJSON, err := marshalOrEmptyList(result.Issues)
	if err != nil {
		return models.DocumentProfile{}, fmt.Errorf("failed to serialize issue snapshot: %w", err)
	}
	passedJSON, err := marshalOrEmptyList(result.PassedCriteria)
	if err != nil {
		return models.DocumentProfile{}, fmt.Errorf("failed to serialize passed criteria: %w", err)
	}

	encryptedPayload := ""
	if payload != "" {
		encryptedPayload, err = s.cipher.EncryptString(payload)
		if err != nil {
			log.Err(err).Str("func", "*sessionService.SaveSession").Str("file_hash", hash).Msg("failed to encrypt document payload")
			return models.DocumentProfile{}, fmt.Errorf("failed to encrypt document payload: %w", err)
		}
	}

	now := time.Now()
	profile := models.DocumentProfile{
		FileHash:           hash,
		FilePath:           path,
		OriginalName:       filepath.Base(path),
		LastScore:          result.Score,
		LastIssuesJSON:     issuesJSON,
		PassedCriteriaJSON: passedJSON,
		EncryptedPayload:   encryptedPayload,
		LastSessionAt:      now,
		CreatedAt:          now,
	}

	stored, err := s.profileRepository.UpsertProfile(ctx, profile)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "*sessionService.SaveSession").
			Str("file_hash", hash).
			Msg("profile save failed, session continues without history")
		return models.DocumentProfile{}, nil
	}

	return stored, nil
}

// GetProfile returns the stored profile for the document at path. A document
// that has never been seen yields nil, and so does a storage failure (after
// a logged warning): history lookup must never abort the session.
func (s *sessionService) GetProfile(ctx context.Context, path string) (*models.DocumentProfile, error) {
	log := logger.FromContext(ctx)

	hash, err := identity.ContentHash(path)
	if err != nil {
		log.Err(err).Str("func", "*sessionService.GetProfile").Str("path", path).Msg("failed to hash document content")
		return nil, fmt.Errorf("failed to hash document content: %w", err)
	}

	profile, err := s.profileRepository.GetProfileByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, nil
		}
		log.Warn().Err(err).
			Str("func", "*sessionService.GetProfile").
			Str("file_hash", hash).
			Msg("profile lookup failed, treating document as first encounter")
		return nil, nil
	}

	return &profile, nil
}

// GetPayload decrypts the sensitive payload stored with the document's
// profile. Decryption failures propagate so callers can distinguish a wrong
// key from an absent payload.
func (s *sessionService) GetPayload(ctx context.Context, path string) (string, error) {
	profile, err := s.GetProfile(ctx, path)
	if err != nil {
		return "", err
	}
	if profile == nil || profile.EncryptedPayload == "" {
		return "", nil
	}

	return s.cipher.DecryptString(profile.EncryptedPayload)
}

// ListProfiles returns every tracked document, most recently seen first.
// Storage failures degrade to an empty list.
func (s *sessionService) ListProfiles(ctx context.Context) []models.DocumentProfile {
	log := logger.FromContext(ctx)

	profiles, err := s.profileRepository.ListProfiles(ctx)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "*sessionService.ListProfiles").
			Msg("profile listing failed, returning empty list")
		return nil
	}

	return profiles
}

// snapshotKeys deserializes the profile's stored issue snapshot into diff
// keys, preserving snapshot order. Malformed snapshots degrade to nil.
func (s *sessionService) snapshotKeys(profile *models.DocumentProfile, log *logger.Logger) []models.IssueKey {
	if profile.LastIssuesJSON == "" {
		return nil
	}

	var previousIssues []models.Issue
	if err := json.Unmarshal([]byte(profile.LastIssuesJSON), &previousIssues); err != nil {
		log.Warn().Err(err).
			Str("func", "*sessionService.snapshotKeys").
			Str("file_hash", profile.FileHash).
			Msg("unparsable issue snapshot, treating previous session as empty")
		return nil
	}

	keys := make([]models.IssueKey, 0, len(previousIssues))
	seen := make(map[models.IssueKey]struct{}, len(previousIssues))
	for _, issue := range previousIssues {
		key := issue.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}

// marshalOrEmptyList serializes v, rendering a nil slice as "[]" so stored
// snapshots always hold a JSON array.
func marshalOrEmptyList[T any](v []T) (string, error) {
	if v == nil {
		return "[]", nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
