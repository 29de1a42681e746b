package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup. The document table is a single-slot
// store: one fixed key, the whole serialized document as its value.
const schema = `
CREATE TABLE IF NOT EXISTS document (
    slot       TEXT PRIMARY KEY,
    body       TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const slotKey = "progress"

// SQLiteStore implements Store using a local SQLite database in WAL mode.
// It exists for setups where the progress document should live alongside
// other local tooling state in one database rather than as a loose JSON
// file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath, enables
// WAL mode and busy timeout, and creates the document table if it does not
// exist.
func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	// One connection: SQLite has a single writer, and one connection keeps
	// the PRAGMA setup from having to run per pooled connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Available probes the database with a trial write and delete.
func (s *SQLiteStore) Available() bool {
	if _, err := s.db.Exec(
		"INSERT INTO document (slot, body) VALUES ('probe', '') ON CONFLICT(slot) DO UPDATE SET body = ''",
	); err != nil {
		return false
	}
	_, err := s.db.Exec("DELETE FROM document WHERE slot = 'probe'")
	return err == nil
}

// Read returns the stored document, or ok=false when the slot is empty or
// holds invalid JSON.
func (s *SQLiteStore) Read() ([]byte, bool) {
	var body string
	err := s.db.QueryRow("SELECT body FROM document WHERE slot = ?", slotKey).Scan(&body)
	if err != nil {
		// sql.ErrNoRows and real failures both collapse to "no document".
		return nil, false
	}
	data := []byte(body)
	if !json.Valid(data) {
		return nil, false
	}
	return data, true
}

// Write upserts the whole document into the slot.
func (s *SQLiteStore) Write(data []byte) bool {
	const q = `
		INSERT INTO document (slot, body, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`
	_, err := s.db.Exec(q, slotKey, string(data))
	return err == nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
