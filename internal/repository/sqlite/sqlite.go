// Package sqlite implements the repository contract on a local SQLite file.
//
// It is the fallback backend for running taskboard without a SurrealDB: one
// row per record, with the entity serialized as a JSON document. Field
// lookups use json_extract, so the queryable-field behavior matches the
// document store.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the shared database handle.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the database file and prepares the schema.
// Use ":memory:" for an ephemeral database in tests.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if path == ":memory:" {
		// Each pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %s: %w", pragma, err)
		}
	}

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return d, nil
}

func (d *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		tbl  TEXT NOT NULL,
		id   TEXT NOT NULL,
		data JSON NOT NULL,
		PRIMARY KEY (tbl, id)
	);
	`
	_, err := d.db.Exec(schema)
	return err
}

// Close releases the underlying handle.
func (d *DB) Close() error {
	return d.db.Close()
}
