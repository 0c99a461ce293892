// Package store persists per-run scan summaries to SQLite so score trends
// survive across runs. Findings themselves are never stored; a scan's
// finding list lives only for the run that produced it.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// DB wraps a sql.DB connection to the codepulse history database.
type DB struct {
	conn *sql.DB
}

// Open opens or creates the SQLite database at the given path.
// It creates the parent directory if it does not exist.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// WAL keeps concurrent history reads cheap while a scan writes.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

// OpenInMemory opens an in-memory SQLite database, useful for testing.
func OpenInMemory() (*DB, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate runs forward migrations to bring the schema up to date.
func (db *DB) migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id        TEXT NOT NULL,
			taken_at      TEXT NOT NULL,
			mode          TEXT NOT NULL,
			project       TEXT NOT NULL,
			strategy      TEXT NOT NULL,
			score         REAL NOT NULL,
			total_issues  INTEGER NOT NULL,
			critical      INTEGER NOT NULL,
			high          INTEGER NOT NULL,
			medium        INTEGER NOT NULL,
			low           INTEGER NOT NULL,
			info          INTEGER NOT NULL,
			files_scanned INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_mode_project ON scans(mode, project, id)`,
		`DELETE FROM schema_version`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}

	_, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion)
	return err
}
