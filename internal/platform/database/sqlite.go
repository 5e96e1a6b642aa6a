package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Open opens (or creates) the SQLite database file at path and verifies
// the connection. SQLite serializes writes itself; the pool is kept small
// so writers queue in the driver rather than pile up on the file lock.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

// Migrate creates the schema if it does not exist yet. Idempotent, runs on
// every boot.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id              TEXT PRIMARY KEY,
			name            TEXT NOT NULL DEFAULT 'User',
			email           TEXT NOT NULL UNIQUE,
			hashed_password TEXT NOT NULL,
			role            TEXT NOT NULL,
			created_at      TIMESTAMP NOT NULL,
			updated_at      TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id           TEXT PRIMARY KEY,
			passenger_id TEXT NOT NULL REFERENCES users(id),
			trip_date    TEXT NOT NULL,
			origin       TEXT NOT NULL,
			destination  TEXT NOT NULL,
			status       TEXT NOT NULL DEFAULT 'Booked',
			created_at   TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_passenger ON bookings (passenger_id)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
