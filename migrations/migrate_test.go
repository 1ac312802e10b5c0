// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUp_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB itself; any statement fails on sqlmock

	err = Up(db)
	if err == nil {
		t.Fatal("expected error from Up, got nil")
	}

	if !strings.Contains(err.Error(), "migrations") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestEmbeddedMigrations_ContainInitialSchema(t *testing.T) {
	content, err := embedded.ReadFile("00001_init.sql")
	if err != nil {
		t.Fatalf("initial migration not embedded: %v", err)
	}

	for _, table := range []string{"users", "document_profiles", "audit_log"} {
		if !strings.Contains(string(content), table) {
			t.Errorf("initial migration does not create table %q", table)
		}
	}
}
