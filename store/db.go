// Package store persists sweep observations in SQLite.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sweep_rows (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT    NOT NULL,
	simulation    INTEGER NOT NULL,
	edge_prob     REAL    NOT NULL,
	nb_vertices   INTEGER NOT NULL,
	nb_edges      INTEGER NOT NULL,
	size_1st      INTEGER NOT NULL,
	size_2nd      INTEGER NOT NULL,
	nb_comp       INTEGER NOT NULL,
	created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sweep_rows_run ON sweep_rows(run_id, simulation, edge_prob);
`

// DB wraps a SQLite database connection
type DB struct {
	conn *sql.DB
	Path string
}

// OpenDB opens a SQLite database with WAL mode and ensures the schema exists
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One writer; also keeps ":memory:" databases on a single connection.
	conn.SetMaxOpenConns(1)

	// Enable WAL mode for concurrent reads
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{conn: conn, Path: path}, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.conn.Close()
}

// Conn returns the underlying sql.DB for custom queries
func (d *DB) Conn() *sql.DB {
	return d.conn
}
