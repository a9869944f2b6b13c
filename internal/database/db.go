// Package database provides the SQLite-backed analysis store. Keywords and
// recommendations are stored as JSON text columns; ids come from SQLite's
// AUTOINCREMENT so they are unique and monotonically increasing.
package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB represents the database connection.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the SQLite database at the given path.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite allows one writer at a time; serialising through a single
	// connection avoids SQLITE_BUSY under concurrent requests.
	conn.SetMaxOpenConns(1)

	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the underlying database connection.
func (db *DB) Conn() *sql.DB {
	return db.conn
}
