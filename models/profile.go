// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DocumentProfile is the stored record of a document's last validation
// outcome, keyed by the SHA-256 content hash of the file bytes. A renamed or
// moved file keeps its profile; a file with different bytes is a different
// profile, never an update.
type DocumentProfile struct {
	// ProfileID is the internal unique identifier of the profile row.
	// It is not exposed via JSON and is used only at the persistence layer.
	ProfileID int64 `json:"-"`

	// FileHash is the 64-character lowercase hex SHA-256 digest of the
	// document content. Unique per profile.
	FileHash string `json:"file_hash"`

	// FilePath is the last known canonical path of the document.
	FilePath string `json:"file_path"`

	// OriginalName is the base name of the file at first encounter.
	OriginalName string `json:"original_name"`

	// LastScore is the compliance score of the most recent session.
	LastScore float64 `json:"last_score"`

	// LastIssuesJSON is the serialized snapshot of the issue set recorded by
	// the most recent session. Unparsable snapshots are treated as empty when
	// sessions are compared.
	LastIssuesJSON string `json:"-"`

	// PassedCriteriaJSON is the serialized set of criteria that passed in the
	// most recent session.
	PassedCriteriaJSON string `json:"-"`

	// EncryptedPayload optionally holds the document content encrypted by the
	// cipher's string wrapper (base64 text). Empty when the document is not
	// stored encrypted.
	EncryptedPayload string `json:"-"`

	// SessionCount is the number of validation sessions recorded for this
	// content hash. Starts at 1 and increments on every save.
	SessionCount int64 `json:"session_count"`

	// LastSessionAt is the timestamp of the most recent session save.
	LastSessionAt time.Time `json:"last_session_at"`

	// CreatedAt is the timestamp of the first encounter of this content hash.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the DocumentProfile model.
func (p DocumentProfile) TableName() string {
	return "document_profiles"
}

// DiffResult is the outcome of comparing a document's current issue set with
// the issue set recorded by its previous session.
type DiffResult struct {
	// IsReturning is true when a profile for the document's content hash
	// already existed.
	IsReturning bool `json:"is_returning"`

	// PreviousScore is the score recorded by the previous session.
	// Nil on first encounter.
	PreviousScore *float64 `json:"previous_score"`

	// CurrentScore is the score of the current validation pass.
	CurrentScore float64 `json:"current_score"`

	// NewIssues are findings present now but absent in the previous session.
	NewIssues []IssueKey `json:"new_issues"`

	// ResolvedIssues are findings present previously but absent now.
	ResolvedIssues []IssueKey `json:"resolved_issues"`

	// PersistentIssues are findings present in both sessions.
	PersistentIssues []IssueKey `json:"persistent_issues"`

	// SessionCount is the profile's recorded session count; 0 on first
	// encounter.
	SessionCount int64 `json:"session_count"`
}
