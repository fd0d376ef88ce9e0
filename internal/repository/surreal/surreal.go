// Package surreal implements the repository contract on a remote SurrealDB.
//
// One connection is opened at process start and shared by every collection;
// the handle is safe for concurrent use and lives for the process lifetime.
// All operations are parameterized SurrealQL so table names, ids and values
// are always bound, never spliced.
package surreal

import (
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// Config holds the connection settings for a SurrealDB endpoint.
type Config struct {
	// Address is the RPC endpoint, e.g. "ws://localhost:8000".
	Address   string
	Username  string
	Password  string
	Namespace string
	Database  string
}

// DB is a connected SurrealDB handle scoped to one namespace/database.
type DB struct {
	conn *surrealdb.DB
}

// Open connects, authenticates as a root user and selects the configured
// namespace and database, mirroring the startup sequence the API expects:
// connection problems are fatal at boot, never discovered mid-request.
func Open(cfg Config) (*DB, error) {
	conn, err := surrealdb.New(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Address, err)
	}

	if _, err := conn.SignIn(&surrealdb.Auth{
		Username: cfg.Username,
		Password: cfg.Password,
	}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sign in: %w", err)
	}

	if err := conn.Use(cfg.Namespace, cfg.Database); err != nil {
		conn.Close()
		return nil, fmt.Errorf("use %s/%s: %w", cfg.Namespace, cfg.Database, err)
	}

	return &DB{conn: conn}, nil
}

// Close tears down the underlying RPC connection.
func (d *DB) Close() {
	d.conn.Close()
}
