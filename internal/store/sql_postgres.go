package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	pingAttempts = 3
	pingBackoff  = time.Second
)

// NewConnectPostgres opens the server database through the pgx stdlib driver.
// Pings failing with a retryable PostgreSQL error are repeated a few times
// to ride out a database that is still starting.
func NewConnectPostgres(ctx context.Context, cfg config.ServerDB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = pingWithRetry(ctx, conn, NewPostgresErrorClassifier(), log); err != nil {
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		migrate: migrations.MigrateServer,
		logger:  log,
	}, nil
}

func pingWithRetry(ctx context.Context, conn *sql.DB, classifier *PostgresErrorClassifier, log *logger.Logger) error {
	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		if err = conn.PingContext(ctx); err == nil {
			return nil
		}

		log.Err(err).Str("func", "NewConnectPostgres").Int("attempt", attempt).Msg("error connecting database (ping)")
		if classifier.Classify(err) != Retryable || attempt == pingAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pingBackoff * time.Duration(attempt)):
		}
	}

	return err
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
