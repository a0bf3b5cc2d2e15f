// Package catalog records every corpus import attempt in a local SQLite
// database, so best-effort sync failures stay observable after the fact.
//
// Build modes follow the repository convention:
//   - Default (CGO_ENABLED=0): pure Go modernc.org/sqlite
//   - CGO mode (-tags cgo_sqlite): mattn/go-sqlite3
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/classicalang/corpora/core/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS imports (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL,
	language   TEXT NOT NULL,
	corpus     TEXT NOT NULL,
	action     TEXT NOT NULL,
	status     TEXT NOT NULL,
	error      TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_imports_corpus ON imports(language, corpus);
`

// Entry is one recorded import attempt.
type Entry struct {
	RunID     string
	Language  string
	Corpus    string
	Action    string
	Status    string
	Error     string
	CreatedAt time.Time
}

// Store is an acquisition catalog backed by SQLite.
type Store struct {
	db *sql.DB
}

// DriverType returns "purego" or "cgo" depending on the build.
func DriverType() string {
	return driverType
}

// Open opens (creating if needed) the catalog database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize catalog schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one import attempt. A missing RunID or CreatedAt is
// filled in.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.RunID == "" {
		e.RunID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO imports (run_id, language, corpus, action, status, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Language, e.Corpus, e.Action, e.Status, e.Error,
		e.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record import: %w", err)
	}
	return nil
}

// History returns the most recent attempts for a language, newest first.
// An empty corpus matches all corpora; limit <= 0 means no limit.
func (s *Store) History(ctx context.Context, language, corpus string, limit int) ([]Entry, error) {
	query := `SELECT run_id, language, corpus, action, status, error, created_at
		  FROM imports WHERE language = ?`
	args := []any{language}
	if corpus != "" {
		query += " AND corpus = ?"
		args = append(args, corpus)
	}
	query += " ORDER BY id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LastStatus returns the most recent attempt for one corpus, or
// errors.ErrNotFound when it was never imported.
func (s *Store) LastStatus(ctx context.Context, language, corpus string) (Entry, error) {
	entries, err := s.History(ctx, language, corpus, 1)
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, errors.Wrapf(errors.ErrNotFound, "no import recorded for %s/%s", language, corpus)
	}
	return entries[0], nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var e Entry
	var createdAt string
	if err := row.Scan(&e.RunID, &e.Language, &e.Corpus, &e.Action, &e.Status, &e.Error, &createdAt); err != nil {
		return Entry{}, fmt.Errorf("scan entry: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parse created_at: %w", err)
	}
	e.CreatedAt = ts
	return e, nil
}
