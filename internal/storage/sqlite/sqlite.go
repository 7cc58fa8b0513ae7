// Package sqlite implements the storage.Store interface on a local
// SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/habitual-app/habitual/internal/storage"
	"github.com/habitual-app/habitual/internal/types"
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check that SQLiteStore implements Store
var _ storage.Store = (*SQLiteStore)(nil)

// New creates a new SQLite storage backend
func New(path string) (*SQLiteStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=ON")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Initialize schema
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads the saved collection in its stored order. Unknown or
// missing kinds load as "habit" so records written by older versions
// still work.
func (s *SQLiteStore) Load(ctx context.Context) (types.Collection, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, category, kind, completed_dates, created_at, archived_at, excluded_dates
		FROM habits
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	var c types.Collection
	for rows.Next() {
		var (
			h             types.Habit
			kind          string
			completedJSON string
			excludedJSON  string
			archivedAt    sql.NullString
		)
		if err := rows.Scan(&h.ID, &h.Title, &h.Category, &kind,
			&completedJSON, &h.CreatedAt, &archivedAt, &excludedJSON); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}

		h.Kind = types.Kind(kind).Normalize()
		if archivedAt.Valid {
			h.ArchivedAt = archivedAt.String
		}
		if err := json.Unmarshal([]byte(completedJSON), &h.CompletedDates); err != nil {
			return nil, fmt.Errorf("failed to decode completed dates for %s: %w", h.ID, err)
		}
		if err := json.Unmarshal([]byte(excludedJSON), &h.ExcludedDates); err != nil {
			return nil, fmt.Errorf("failed to decode excluded dates for %s: %w", h.ID, err)
		}
		c = append(c, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}

	if len(c) == 0 {
		return nil, storage.ErrNoState
	}
	return c, nil
}

// Save writes the full collection, replacing any previous state. The
// write is a single transaction so a failure leaves the previous
// state intact.
func (s *SQLiteStore) Save(ctx context.Context, c types.Collection) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM habits`); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}

	for i, h := range c {
		completedJSON, err := encodeDates(h.CompletedDates)
		if err != nil {
			return fmt.Errorf("failed to encode completed dates for %s: %w", h.ID, err)
		}
		excludedJSON, err := encodeDates(h.ExcludedDates)
		if err != nil {
			return fmt.Errorf("failed to encode excluded dates for %s: %w", h.ID, err)
		}

		var archivedAt interface{}
		if h.ArchivedAt != "" {
			archivedAt = h.ArchivedAt
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO habits (id, position, title, category, kind, completed_dates, created_at, archived_at, excluded_dates)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, h.ID, i, h.Title, string(h.Category), string(h.Kind.Normalize()),
			completedJSON, h.CreatedAt, archivedAt, excludedJSON)
		if err != nil {
			return fmt.Errorf("failed to insert habit %s: %w", h.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func encodeDates(s types.DateSet) (string, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
