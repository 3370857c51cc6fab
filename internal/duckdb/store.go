// Package duckdb provides a persistent, queryable store for annotation
// service responses, keyed by request URL hash.
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection for caching REST responses.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS responses (
		key VARCHAR PRIMARY KEY,
		body BLOB,
		stored_at TIMESTAMP,
		expires_at TIMESTAMP
	)`)
	return err
}

// Get returns the cached body for key, or false if absent or expired.
// Expired rows are deleted on read.
func (s *Store) Get(key string) ([]byte, bool) {
	var body []byte
	var expiresAt sql.NullTime
	err := s.db.QueryRow(
		`SELECT body, expires_at FROM responses WHERE key = ?`, key,
	).Scan(&body, &expiresAt)
	if err != nil {
		return nil, false
	}
	if expiresAt.Valid && time.Now().After(expiresAt.Time) {
		s.db.Exec(`DELETE FROM responses WHERE key = ?`, key)
		return nil, false
	}
	return body, true
}

// Set stores a body under key. A ttl of zero stores the row without expiry.
func (s *Store) Set(key string, value []byte, ttl time.Duration) error {
	now := time.Now()
	var expiresAt any
	if ttl > 0 {
		expiresAt = now.Add(ttl)
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO responses (key, body, stored_at, expires_at) VALUES (?, ?, ?, ?)`,
		key, value, now, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("store response: %w", err)
	}
	return nil
}

// Delete removes the row for key.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM responses WHERE key = ?`, key)
	return err
}

// Clear removes all cached responses.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM responses`)
	return err
}

// Count returns the number of cached responses.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM responses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count responses: %w", err)
	}
	return n, nil
}
