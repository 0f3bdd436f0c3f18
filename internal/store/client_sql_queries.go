// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// The session table holds at most one row with id = 1.
const (
	getSession = `
		SELECT token, created_at
		FROM session
		WHERE id = 1;`

	saveSession = `
		INSERT INTO session (id, token, created_at)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET token = excluded.token,
		    created_at = excluded.created_at;`

	deleteSession = `
		DELETE FROM session
		WHERE id = 1;`
)
