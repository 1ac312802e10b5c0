// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditEntry is one immutable record of a single remediation change.
// Entries are only ever appended; they are never mutated or deleted.
type AuditEntry struct {
	// EntryID is the unique identifier of the entry, assigned at append time.
	EntryID string `json:"entry_id"`

	// FileHash references the document the change was applied to.
	FileHash string `json:"file_hash"`

	// UserID optionally identifies the actor performing the remediation.
	UserID *int64 `json:"user_id,omitempty"`

	// Action is the remediation action identifier,
	// e.g. "set_title" or "add_alt_text".
	Action string `json:"action"`

	// Criterion is the WCAG criterion the change addresses, if any.
	Criterion *string `json:"criterion,omitempty"`

	// Page is the affected page number, if applicable.
	Page *int64 `json:"page,omitempty"`

	// OriginalValue is the value before the change.
	OriginalValue *string `json:"original_value,omitempty"`

	// NewValue is the value after the change.
	NewValue *string `json:"new_value,omitempty"`

	// ElementDescription describes the affected document element.
	ElementDescription *string `json:"element_description,omitempty"`

	// CreatedAt is the entry creation timestamp. Retrieval is ordered
	// newest-first by this field.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the AuditEntry model.
func (e AuditEntry) TableName() string {
	return "audit_log"
}

// AuditAction is one summarized remediation change as consumed by the
// external report generator. Timestamp is rendered in RFC 3339 so that
// lexical ordering matches chronological ordering.
type AuditAction struct {
	Action             string  `json:"action"`
	Criterion          *string `json:"criterion"`
	Page               *int64  `json:"page"`
	OriginalValue      *string `json:"original_value"`
	NewValue           *string `json:"new_value"`
	ElementDescription *string `json:"element_description"`
	Timestamp          string  `json:"timestamp"`
}

// AuditSummary aggregates a document's audit trail for reporting.
type AuditSummary struct {
	TotalChanges int           `json:"total_changes"`
	Actions      []AuditAction `json:"actions"`
}

// AuditFilter narrows audit trail queries. Zero-valued fields are ignored.
type AuditFilter struct {
	// FileHash restricts entries to one document. Required.
	FileHash string

	// Action restricts entries to one action identifier.
	Action string

	// Criterion restricts entries to one WCAG criterion.
	Criterion string

	// Page restricts entries to one page number.
	Page *int64
}
