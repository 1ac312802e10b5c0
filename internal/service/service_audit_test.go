package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/doc-sentry/internal/logger"
	"github.com/MKhiriev/doc-sentry/internal/mock"
	"github.com/MKhiriev/doc-sentry/models"
)

func newTestAuditSvc(t *testing.T, ctrl *gomock.Controller) (*auditService, *mock.MockAuditRepository) {
	t.Helper()
	mockAudit := mock.NewMockAuditRepository(ctrl)

	svc := NewAuditService(mockAudit, logger.NewLogger("test")).(*auditService)

	return svc, mockAudit
}

// ── Append ───────────────────────────────────────────────────────────────────

func TestAppend_FillsIdentifierAndTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAudit := newTestAuditSvc(t, ctrl)
	ctx := context.Background()

	mockAudit.EXPECT().
		AppendEntry(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.AuditEntry) error {
			assert.NotEmpty(t, entry.EntryID)
			assert.False(t, entry.CreatedAt.IsZero())
			assert.Equal(t, "abc123", entry.FileHash)
			assert.Equal(t, "alt_text_added", entry.Action)
			return nil
		})

	svc.Append(ctx, models.AuditEntry{
		FileHash: "abc123",
		Action:   "alt_text_added",
	})
}

func TestAppend_KeepsCallerAssignedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAudit := newTestAuditSvc(t, ctrl)
	ctx := context.Background()
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	mockAudit.EXPECT().
		AppendEntry(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.AuditEntry) error {
			assert.Equal(t, "fixed-id", entry.EntryID)
			assert.Equal(t, at, entry.CreatedAt)
			return nil
		})

	svc.Append(ctx, models.AuditEntry{
		EntryID:   "fixed-id",
		FileHash:  "abc123",
		Action:    "metadata_updated",
		CreatedAt: at,
	})
}

func TestAppend_StorageFailureSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAudit := newTestAuditSvc(t, ctrl)
	ctx := context.Background()

	mockAudit.EXPECT().
		AppendEntry(ctx, gomock.Any()).
		Return(errors.New("database is locked"))

	// Must not panic or surface the error in any way.
	svc.Append(ctx, models.AuditEntry{FileHash: "abc123", Action: "alt_text_added"})
}

// ── List / Find ──────────────────────────────────────────────────────────────

func TestList_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAudit := newTestAuditSvc(t, ctrl)
	ctx := context.Background()

	entries := []models.AuditEntry{{EntryID: "id-2"}, {EntryID: "id-1"}}
	mockAudit.EXPECT().
		ListEntries(ctx, "abc123").
		Return(entries, nil)

	got := svc.List(ctx, "abc123")
	assert.Equal(t, entries, got)
}

func TestList_StorageFailureDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAudit := newTestAuditSvc(t, ctrl)
	ctx := context.Background()

	mockAudit.EXPECT().
		ListEntries(ctx, "abc123").
		Return(nil, errors.New("db failure"))

	assert.Empty(t, svc.List(ctx, "abc123"))
}

func TestFind_PassesFilterThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAudit := newTestAuditSvc(t, ctrl)
	ctx := context.Background()

	filter := models.AuditFilter{FileHash: "abc123", Action: "alt_text_added"}
	mockAudit.EXPECT().
		FindEntries(ctx, filter).
		Return([]models.AuditEntry{{EntryID: "id-1"}}, nil)

	got := svc.Find(ctx, filter)
	assert.Len(t, got, 1)
}

func TestFind_StorageFailureDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAudit := newTestAuditSvc(t, ctrl)
	ctx := context.Background()

	mockAudit.EXPECT().
		FindEntries(ctx, gomock.Any()).
		Return(nil, errors.New("db failure"))

	assert.Empty(t, svc.Find(ctx, models.AuditFilter{FileHash: "abc123"}))
}

// ── Summarize ────────────────────────────────────────────────────────────────

func TestSummarize_RendersRFC3339Timestamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAudit := newTestAuditSvc(t, ctrl)
	ctx := context.Background()

	criterion := "1.1"
	page := int64(3)
	newer := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	older := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	mockAudit.EXPECT().
		ListEntries(ctx, "abc123").
		Return([]models.AuditEntry{
			{EntryID: "id-2", Action: "alt_text_added", Criterion: &criterion, Page: &page, CreatedAt: newer},
			{EntryID: "id-1", Action: "metadata_updated", CreatedAt: older},
		}, nil)

	summary := svc.Summarize(ctx, "abc123")

	assert.Equal(t, 2, summary.TotalChanges)
	require.Len(t, summary.Actions, 2)

	assert.Equal(t, "alt_text_added", summary.Actions[0].Action)
	assert.Equal(t, "2026-03-14T10:00:00Z", summary.Actions[0].Timestamp)
	assert.Equal(t, &criterion, summary.Actions[0].Criterion)
	assert.Equal(t, &page, summary.Actions[0].Page)

	assert.Equal(t, "2026-03-14T09:00:00Z", summary.Actions[1].Timestamp)
	assert.Nil(t, summary.Actions[1].Criterion)

	// RFC 3339 keeps lexical order aligned with chronological order.
	assert.Greater(t, summary.Actions[0].Timestamp, summary.Actions[1].Timestamp)
}

func TestSummarize_EmptyHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAudit := newTestAuditSvc(t, ctrl)
	ctx := context.Background()

	mockAudit.EXPECT().
		ListEntries(ctx, "unseen").
		Return(nil, nil)

	summary := svc.Summarize(ctx, "unseen")
	assert.Zero(t, summary.TotalChanges)
	assert.Empty(t, summary.Actions)
}
