package store

import (
	"database/sql"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// DB is a database handle bound to the schema it must be migrated to.
type DB struct {
	*sql.DB
	migrate func(*sql.DB) error
	logger  *logger.Logger
}

// Migrate applies the embedded schema of the database flavour.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return nil
	}
	return db.migrate(db.DB)
}
