package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/doc-sentry/internal/logger"
	"github.com/MKhiriev/doc-sentry/models"
)

// auditColumns is the canonical column order shared by every audit_log
// SELECT, including the ones assembled dynamically for filtered lookups.
var auditColumns = []string{
	"entry_id",
	"file_hash",
	"user_id",
	"action",
	"criterion",
	"page",
	"original_value",
	"new_value",
	"element_description",
	"created_at",
}

// auditRepository is the SQLite-backed implementation of [AuditRepository].
// It handles append and lookup operations against the "audit_log" table.
type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository] backed by the provided
// database connection and logger.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

// AppendEntry inserts a single audit record. The entry is stored verbatim;
// identifier and timestamp assignment is the caller's responsibility.
func (r *auditRepository) AppendEntry(ctx context.Context, entry models.AuditEntry) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, appendAuditEntry,
		entry.EntryID,
		entry.FileHash,
		entry.UserID,
		entry.Action,
		entry.Criterion,
		entry.Page,
		entry.OriginalValue,
		entry.NewValue,
		entry.ElementDescription,
		entry.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*auditRepository.AppendEntry").
			Str("file_hash", entry.FileHash).
			Str("action", entry.Action).
			Msg("failed to execute insert for audit entry")
		return fmt.Errorf("failed to append audit entry (entry_id=%s): %w", entry.EntryID, err)
	}

	return nil
}

// ListEntries returns all entries recorded for the given content hash, newest
// first. Entries sharing a timestamp are ordered by descending rowid, so the
// most recently inserted record always comes first.
func (r *auditRepository) ListEntries(ctx context.Context, fileHash string) ([]models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAuditEntries, fileHash)
	if err != nil {
		log.Err(err).
			Str("func", "*auditRepository.ListEntries").
			Str("file_hash", fileHash).
			Msg("failed to execute query for listing audit entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return r.collectEntries(ctx, rows)
}

// FindEntries returns entries matching every non-zero filter field, newest
// first. The WHERE clause is assembled with squirrel so that only the
// populated fields constrain the result.
func (r *auditRepository) FindEntries(ctx context.Context, filter models.AuditFilter) ([]models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(auditColumns...).
		From("audit_log").
		PlaceholderFormat(sq.Dollar)

	if filter.FileHash != "" {
		builder = builder.Where(sq.Eq{"file_hash": filter.FileHash})
	}
	if filter.Action != "" {
		builder = builder.Where(sq.Eq{"action": filter.Action})
	}
	if filter.Criterion != "" {
		builder = builder.Where(sq.Eq{"criterion": filter.Criterion})
	}
	if filter.Page != nil {
		builder = builder.Where(sq.Eq{"page": *filter.Page})
	}

	query, args, err := builder.
		OrderBy("created_at DESC", "rowid DESC").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "*auditRepository.FindEntries").
			Msg("failed to build filtered audit query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*auditRepository.FindEntries").
			Msg("failed to execute filtered audit query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return r.collectEntries(ctx, rows)
}

// collectEntries scans an audit_log result set into models, converting
// nullable columns to pointer fields.
func (r *auditRepository) collectEntries(ctx context.Context, rows *sql.Rows) ([]models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	var entries []models.AuditEntry

	for rows.Next() {
		var (
			entry              models.AuditEntry
			userID             sql.NullInt64
			criterion          sql.NullString
			page               sql.NullInt64
			originalValue      sql.NullString
			newValue           sql.NullString
			elementDescription sql.NullString
		)

		scanErr := rows.Scan(
			&entry.EntryID,
			&entry.FileHash,
			&userID,
			&entry.Action,
			&criterion,
			&page,
			&originalValue,
			&newValue,
			&elementDescription,
			&entry.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*auditRepository.collectEntries").
				Msg("failed to scan audit entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		entry.UserID = nullInt64Ptr(userID)
		entry.Criterion = nullStringPtr(criterion)
		entry.Page = nullInt64Ptr(page)
		entry.OriginalValue = nullStringPtr(originalValue)
		entry.NewValue = nullStringPtr(newValue)
		entry.ElementDescription = nullStringPtr(elementDescription)

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*auditRepository.collectEntries").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating audit entry rows: %w", rowsErr)
	}

	return entries, nil
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
