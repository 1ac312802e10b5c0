package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/doc-sentry/internal/logger"
	"github.com/MKhiriev/doc-sentry/models"
)

func newTestAuditRepo(t *testing.T) (*auditRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &auditRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func strp(s string) *string { return &s }
func i64p(v int64) *int64   { return &v }

func TestAppendEntry_Success(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	entry := models.AuditEntry{
		EntryID:            "2b1e9f4c",
		FileHash:           "abc123",
		UserID:             i64p(7),
		Action:             "alt_text_added",
		Criterion:          strp("1.1"),
		Page:               i64p(3),
		OriginalValue:      strp(""),
		NewValue:           strp("Chart of quarterly sales"),
		ElementDescription: strp("Figure 2"),
		CreatedAt:          now,
	}

	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs(entry.EntryID, entry.FileHash, entry.UserID, entry.Action,
			entry.Criterion, entry.Page, entry.OriginalValue, entry.NewValue,
			entry.ElementDescription, entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.AppendEntry(ctx, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAppendEntry_NilOptionalFields(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()

	entry := models.AuditEntry{
		EntryID:   "2b1e9f4c",
		FileHash:  "abc123",
		Action:    "tag_structure_fixed",
		CreatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs(entry.EntryID, entry.FileHash, nil, entry.Action,
			nil, nil, nil, nil, nil, entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.AppendEntry(ctx, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAppendEntry_DBError(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO audit_log").
		WillReturnError(errors.New("database is locked"))

	err := repo.AppendEntry(ctx, models.AuditEntry{EntryID: "x", FileHash: "abc123"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestListEntries_Success(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(auditColumns).
		AddRow("id-2", "abc123", 7, "alt_text_added", "1.1", 3, "", "new alt", "Figure 2", now).
		AddRow("id-1", "abc123", nil, "metadata_updated", nil, nil, nil, nil, nil, now.Add(-time.Minute))

	mock.ExpectQuery("SELECT(.|\n)+FROM audit_log(.|\n)+ORDER BY created_at DESC").
		WithArgs("abc123").
		WillReturnRows(rows)

	entries, err := repo.ListEntries(ctx, "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].EntryID != "id-2" {
		t.Errorf("expected newest entry first, got %s", entries[0].EntryID)
	}
	if entries[0].UserID == nil || *entries[0].UserID != 7 {
		t.Errorf("expected user id 7, got %v", entries[0].UserID)
	}
	if entries[1].Criterion != nil {
		t.Errorf("expected nil criterion for NULL column, got %v", *entries[1].Criterion)
	}
}

func TestListEntries_QueryError(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT(.|\n)+FROM audit_log").
		WithArgs("abc123").
		WillReturnError(errors.New("db failure"))

	_, err := repo.ListEntries(ctx, "abc123")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestListEntries_Empty(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT(.|\n)+FROM audit_log").
		WithArgs("unseen").
		WillReturnRows(sqlmock.NewRows(auditColumns))

	entries, err := repo.ListEntries(ctx, "unseen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestFindEntries_AllFilters(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	filter := models.AuditFilter{
		FileHash:  "abc123",
		Action:    "alt_text_added",
		Criterion: "1.1",
		Page:      i64p(3),
	}

	rows := sqlmock.NewRows(auditColumns).
		AddRow("id-1", "abc123", nil, "alt_text_added", "1.1", 3, nil, "alt", nil, now)

	mock.ExpectQuery("SELECT(.|\n)+FROM audit_log WHERE file_hash = \\$1 AND action = \\$2 AND criterion = \\$3 AND page = \\$4").
		WithArgs("abc123", "alt_text_added", "1.1", int64(3)).
		WillReturnRows(rows)

	entries, err := repo.FindEntries(ctx, filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestFindEntries_NoFilters(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT(.|\n)+FROM audit_log ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(auditColumns))

	entries, err := repo.FindEntries(ctx, models.AuditFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestFindEntries_QueryError(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT(.|\n)+FROM audit_log").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindEntries(ctx, models.AuditFilter{FileHash: "abc123"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
