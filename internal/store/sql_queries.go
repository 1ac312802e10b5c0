// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertProfile = `
		INSERT INTO document_profiles (
			file_hash,
			file_path,
			original_name,
			last_score,
			last_issues_json,
			passed_criteria_json,
			encrypted_payload,
			session_count,
			last_session_at,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $9)
		ON CONFLICT (file_hash) DO UPDATE SET
			file_path            = excluded.file_path,
			original_name        = excluded.original_name,
			last_score           = excluded.last_score,
			last_issues_json     = excluded.last_issues_json,
			passed_criteria_json = excluded.passed_criteria_json,
			encrypted_payload    = excluded.encrypted_payload,
			session_count        = document_profiles.session_count + 1,
			last_session_at      = excluded.last_session_at
		RETURNING
			profile_id,
			file_hash,
			file_path,
			original_name,
			last_score,
			last_issues_json,
			passed_criteria_json,
			encrypted_payload,
			session_count,
			last_session_at,
			created_at;`

	getProfileByHash = `
		SELECT
			profile_id,
			file_hash,
			file_path,
			original_name,
			last_score,
			last_issues_json,
			passed_criteria_json,
			encrypted_payload,
			session_count,
			last_session_at,
			created_at
		FROM document_profiles
		WHERE file_hash = $1;`

	listProfiles = `
		SELECT
			profile_id,
			file_hash,
			file_path,
			original_name,
			last_score,
			last_issues_json,
			passed_criteria_json,
			encrypted_payload,
			session_count,
			last_session_at,
			created_at
		FROM document_profiles
		ORDER BY last_session_at DESC;`

	appendAuditEntry = `
		INSERT INTO audit_log (
			entry_id,
			file_hash,
			user_id,
			action,
			criterion,
			page,
			original_value,
			new_value,
			element_description,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	listAuditEntries = `
		SELECT
			entry_id,
			file_hash,
			user_id,
			action,
			criterion,
			page,
			original_value,
			new_value,
			element_description,
			created_at
		FROM audit_log
		WHERE file_hash = $1
		ORDER BY created_at DESC, rowid DESC;`

	createUser = `
		INSERT INTO users (
			username,
			email,
			password_hash,
			is_active,
			created_at
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING
			user_id,
			username,
			email,
			password_hash,
			is_active,
			created_at,
			last_login;`

	findUserByUsername = `
		SELECT
			user_id,
			username,
			email,
			password_hash,
			is_active,
			created_at,
			last_login
		FROM users
		WHERE username = $1;`

	updateUserPassword = `
		UPDATE users
		SET password_hash = $1
		WHERE user_id = $2;`

	touchUserLastLogin = `
		UPDATE users
		SET last_login = $1
		WHERE user_id = $2;`
)
