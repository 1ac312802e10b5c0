package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/doc-sentry/internal/logger"
	"github.com/MKhiriev/doc-sentry/models"
)

// profileRepository is the SQLite-backed implementation of
// [ProfileRepository]. It handles document profile persistence against the
// "document_profiles" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// GetProfileByHash retrieves the profile stored for the given content hash.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrProfileNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped with [ErrScanningRow].
func (r *profileRepository) GetProfileByHash(ctx context.Context, fileHash string) (models.DocumentProfile, error) {
	log := logger.FromContext(ctx)

	var profile models.DocumentProfile
	row := r.db.QueryRowContext(ctx, getProfileByHash, fileHash)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.GetProfileByHash").Msg("error: row is nil")
		return models.DocumentProfile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanProfile(row.Scan, &profile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DocumentProfile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*profileRepository.GetProfileByHash").Msg("error: scanning error")
		return models.DocumentProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

// UpsertProfile inserts a new profile row or refreshes the existing one for
// the same content hash. The session counter is managed entirely by the
// query: a first insert stores 1, every conflict increments the stored value
// by one. The RETURNING clause hands back the canonical database
// representation, so the caller sees the post-increment counter and the
// original creation time.
func (r *profileRepository) UpsertProfile(ctx context.Context, profile models.DocumentProfile) (models.DocumentProfile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertProfile,
		profile.FileHash,
		profile.FilePath,
		profile.OriginalName,
		profile.LastScore,
		profile.LastIssuesJSON,
		profile.PassedCriteriaJSON,
		profile.EncryptedPayload,
		profile.LastSessionAt,
		profile.CreatedAt,
	)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*profileRepository.UpsertProfile").
			Str("file_hash", profile.FileHash).
			Msg("failed to execute upsert for document profile")
		return models.DocumentProfile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var stored models.DocumentProfile
	if err := scanProfile(row.Scan, &stored); err != nil {
		log.Err(err).
			Str("func", "*profileRepository.UpsertProfile").
			Str("file_hash", profile.FileHash).
			Msg("error: scanning error")
		return models.DocumentProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stored, nil
}

// ListProfiles returns every stored profile ordered by last session time,
// most recent first.
func (r *profileRepository) ListProfiles(ctx context.Context) ([]models.DocumentProfile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listProfiles)
	if err != nil {
		log.Err(err).
			Str("func", "*profileRepository.ListProfiles").
			Msg("failed to execute query for listing document profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var profiles []models.DocumentProfile

	for rows.Next() {
		var profile models.DocumentProfile

		if scanErr := scanProfile(rows.Scan, &profile); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*profileRepository.ListProfiles").
				Msg("failed to scan document profile row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		profiles = append(profiles, profile)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*profileRepository.ListProfiles").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating document profile rows: %w", rowsErr)
	}

	return profiles, nil
}

// scanProfile reads one document_profiles row in canonical column order.
// The scan argument is either row.Scan or rows.Scan.
func scanProfile(scan func(dest ...any) error, profile *models.DocumentProfile) error {
	return scan(
		&profile.ProfileID,
		&profile.FileHash,
		&profile.FilePath,
		&profile.OriginalName,
		&profile.LastScore,
		&profile.LastIssuesJSON,
		&profile.PassedCriteriaJSON,
		&profile.EncryptedPayload,
		&profile.SessionCount,
		&profile.LastSessionAt,
		&profile.CreatedAt,
	)
}
