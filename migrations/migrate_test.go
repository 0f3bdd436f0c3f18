// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateServer_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// без ожиданий sqlmock отвечает ошибкой на первый же запрос goose
	err = MigrateServer(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	for name, fn := range map[string]func(*sql.DB) error{
		"client": MigrateClient,
		"server": MigrateServer,
	} {
		t.Run(name, func(t *testing.T) {
			err := fn(nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "db is nil")
		})
	}
}

func TestMigrateClient_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateClient(db))
	// повторный запуск не должен ничего ломать
	require.NoError(t, MigrateClient(db))

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'session'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "session", name)
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	for _, dir := range []string{"client", "server"} {
		entries, err := embedMigrations.ReadDir(dir)
		require.NoError(t, err)
		assert.NotEmpty(t, entries, dir)
	}
}
