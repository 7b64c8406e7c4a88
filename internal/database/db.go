package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (and creates if needed) the SQLite database at path, applies
// connection pragmas and runs migrations. Path ":memory:" is supported for
// tests. The returned handle is safe for concurrent use and is the only
// shared resource in the service.
func Open(path string) (*sql.DB, error) {
	dsn := path
	if !strings.HasPrefix(path, ":memory:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		dsn = path + "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if strings.HasPrefix(path, ":memory:") {
		// Every pooled connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// migrate applies the events schema. The table is append-only; the index
// backs the timestamp-descending listing.
func migrate(db *sql.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS events (
			id          TEXT PRIMARY KEY,
			timestamp   TEXT NOT NULL,
			request_id  TEXT,
			author      TEXT,
			action      TEXT NOT NULL,
			from_branch TEXT,
			to_branch   TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events (timestamp DESC);`

	_, err := db.Exec(schema)
	return err
}
