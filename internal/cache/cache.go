// Package cache persists per-file line counts in a SQLite database so
// repeated runs skip re-reading unchanged files.
package cache

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Entry is one cached file count. A cached row is valid only while the
// file's size and mtime both match.
type Entry struct {
	Path    string
	Size    int64
	MTimeNS int64
	Ext     string
	Lines   uint64
}

// Store manages the SQLite count cache
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open creates a Store backed by the database at dbPath, creating the file
// and schema as needed. ":memory:" is accepted for tests.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	// Set busy_timeout first so the remaining pragmas wait on locks held
	// by a concurrent clc process.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Lookup returns the cached line count for path if a row exists and is
// still valid for the given size and mtime.
func (s *Store) Lookup(path string, size, mtimeNS int64) (uint64, bool, error) {
	var lines uint64
	err := s.db.QueryRow(
		`SELECT lines FROM file_counts WHERE path = ? AND size = ? AND mtime_ns = ?`,
		path, size, mtimeNS,
	).Scan(&lines)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("cache lookup for %s: %w", path, err)
	}
	return lines, true, nil
}

// Put inserts or replaces the cached count for e.Path.
func (s *Store) Put(e Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO file_counts (path, size, mtime_ns, ext, lines)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
		     size = excluded.size,
		     mtime_ns = excluded.mtime_ns,
		     ext = excluded.ext,
		     lines = excluded.lines,
		     counted_at = CURRENT_TIMESTAMP`,
		e.Path, e.Size, e.MTimeNS, e.Ext, e.Lines,
	)
	if err != nil {
		return fmt.Errorf("cache put for %s: %w", e.Path, err)
	}
	return nil
}

// Prune removes rows for files that no longer exist on disk.
func (s *Store) Prune() (int64, error) {
	rows, err := s.db.Query(`SELECT path FROM file_counts`)
	if err != nil {
		return 0, fmt.Errorf("cache prune scan: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return 0, fmt.Errorf("cache prune scan: %w", err)
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			stale = append(stale, path)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("cache prune scan: %w", err)
	}

	var removed int64
	for _, path := range stale {
		res, err := s.db.Exec(`DELETE FROM file_counts WHERE path = ?`, path)
		if err != nil {
			return removed, fmt.Errorf("cache prune delete: %w", err)
		}
		n, _ := res.RowsAffected()
		removed += n
	}
	return removed, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
