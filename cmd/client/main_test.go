package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StartupErrorIsReturned(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "client.log")
	dbPath := filepath.Join(dir, "client.db")

	cfg := &config.ClientConfig{
		App:     config.ClientApp{LogFile: logPath},
		Adapter: config.ClientAdapter{HTTPAddress: ""},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: dbPath}},
	}

	// ошибка адаптера должна вернуться из run, а не завершить процесс
	err := run(context.Background(), cfg, models.NewAppBuildInfo("", "", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInvalidAddress)

	logged, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(logged), "create server adapter")

	_, statErr := os.Stat(dbPath)
	assert.NoError(t, statErr)
}
