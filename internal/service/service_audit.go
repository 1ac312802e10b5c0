package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/doc-sentry/internal/logger"
	"github.com/MKhiriev/doc-sentry/internal/store"
	"github.com/MKhiriev/doc-sentry/models"
)

// auditService is the concrete implementation of AuditService. It records
// remediation actions through an AuditRepository and renders them for
// reporting.
//
// The whole subsystem is best-effort by contract: audit bookkeeping records
// remediation actions, it never gets to fail them. Every storage failure is
// logged and degraded to an empty result.
type auditService struct {
	// auditRepository is the data-access layer for the append-only log.
	auditRepository store.AuditRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuditService constructs an AuditService wired to the given
// AuditRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuditService(auditRepository store.AuditRepository, logger *logger.Logger) AuditService {
	return &auditService{
		auditRepository: auditRepository,
		logger:          logger,
	}
}

// Append records one remediation action, filling in the entry identifier and
// creation timestamp when the caller left them unset. Fire-and-forget: a
// storage failure is logged as a warning and swallowed.
func (a *auditService) Append(ctx context.Context, entry models.AuditEntry) {
	log := logger.FromContext(ctx)

	if entry.EntryID == "" {
		entry.EntryID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := a.auditRepository.AppendEntry(ctx, entry); err != nil {
		log.Warn().Err(err).
			Str("func", "*auditService.Append").
			Str("file_hash", entry.FileHash).
			Str("action", entry.Action).
			Msg("audit append failed, action continues unrecorded")
	}
}

// List returns the document's audit entries, newest first. Storage failures
// degrade to an empty list with a logged warning.
func (a *auditService) List(ctx context.Context, fileHash string) []models.AuditEntry {
	log := logger.FromContext(ctx)

	entries, err := a.auditRepository.ListEntries(ctx, fileHash)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "*auditService.List").
			Str("file_hash", fileHash).
			Msg("audit listing failed, returning empty list")
		return nil
	}

	return entries
}

// Find returns entries matching every non-zero filter field, newest first.
// Storage failures degrade to an empty list with a logged warning.
func (a *auditService) Find(ctx context.Context, filter models.AuditFilter) []models.AuditEntry {
	log := logger.FromContext(ctx)

	entries, err := a.auditRepository.FindEntries(ctx, filter)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "*auditService.Find").
			Str("file_hash", filter.FileHash).
			Msg("audit lookup failed, returning empty list")
		return nil
	}

	return entries
}

// Summarize aggregates the document's audit trail for the external report
// generator. Timestamps are rendered in RFC 3339 so lexical ordering matches
// chronological ordering; entries keep their newest-first order.
func (a *auditService) Summarize(ctx context.Context, fileHash string) models.AuditSummary {
	entries := a.List(ctx, fileHash)

	summary := models.AuditSummary{
		TotalChanges: len(entries),
		Actions:      make([]models.AuditAction, 0, len(entries)),
	}

	for _, entry := range entries {
		summary.Actions = append(summary.Actions, models.AuditAction{
			Action:             entry.Action,
			Criterion:          entry.Criterion,
			Page:               entry.Page,
			OriginalValue:      entry.OriginalValue,
			NewValue:           entry.NewValue,
			ElementDescription: entry.ElementDescription,
			Timestamp:          entry.CreatedAt.Format(time.RFC3339),
		})
	}

	return summary
}
