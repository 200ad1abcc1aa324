// Package store is the sqlite persistence collaborator: a schema, a
// commit/rollback unit of work, and repository functions over it. The
// ledger engine only ever sees the unit-of-work handle and plain query
// methods; there is no hidden global database handle.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // sqlite driver
)

// Store manages the sqlite database connection.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the ledger database at path, with WAL
// mode and foreign keys enabled, and initializes the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// UOW is one atomic unit of work. Every write repository method hangs off
// it; either Commit or Rollback must be called exactly once.
type UOW struct {
	tx   *sql.Tx
	done bool
}

// Begin starts a new unit of work.
func (s *Store) Begin() (*UOW, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning unit of work: %w", err)
	}
	return &UOW{tx: tx}, nil
}

// Commit commits the unit of work.
func (u *UOW) Commit() error {
	if u.done {
		return errors.New("unit of work already finished")
	}
	u.done = true
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("committing unit of work: %w", err)
	}
	return nil
}

// Rollback undoes the unit of work. Safe to call after Commit; it then
// does nothing.
func (u *UOW) Rollback() error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Rollback(); err != nil {
		return fmt.Errorf("rolling back unit of work: %w", err)
	}
	return nil
}
