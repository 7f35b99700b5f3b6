// SPDX-License-Identifier: MIT
// Package: profilekit/store
//
// store.go — SQLite snapshot store.
//
// Contract:
//   • Every method takes a context.Context and is safe for concurrent use
//     (database/sql pools connections).
//   • SaveProfile upserts; SaveSamples replaces a profile's samples in one
//     transaction.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/katalvlaran/profilekit/profile"
)

// ErrNotFound indicates that no profile is stored under the requested id.
var ErrNotFound = errors.New("store: profile not found")

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// Sample is one evaluated point. Y is 0 for one-axis profiles.
type Sample struct {
	X     float64
	Y     float64
	Value float64
}

// Open creates or opens the database at path and runs migrations.
// A leading "~" expands to the home directory; parent directories are
// created as needed.
func Open(path string) (*Store, error) {
	if path != MemoryPath {
		if path != "" && path[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("store: cannot expand home directory: %w", err)
			}
			path = filepath.Join(home, path[1:])
		}
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: cannot open database: %w", err)
	}
	if path == MemoryPath {
		// every pooled connection would get its own empty database
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			metadata TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS samples (
			profile_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			x REAL NOT NULL,
			y REAL NOT NULL DEFAULT 0,
			value REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_samples_profile ON samples(profile_id, x, y);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveProfile inserts or replaces the metadata stored under id.
func (s *Store) SaveProfile(ctx context.Context, id string, meta profile.Metadata) error {
	text, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", id, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO profiles (id, name, metadata) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			metadata = excluded.metadata,
			updated_at = CURRENT_TIMESTAMP`,
		id, string(meta.Name), string(text),
	)
	if err != nil {
		return fmt.Errorf("store: cannot save profile %q: %w", id, err)
	}
	return nil
}

// LoadProfile returns the metadata stored under id.
// Errors: ErrNotFound.
func (s *Store) LoadProfile(ctx context.Context, id string) (profile.Metadata, error) {
	var text string
	err := s.db.QueryRowContext(ctx, "SELECT metadata FROM profiles WHERE id = ?", id).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return profile.Metadata{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return profile.Metadata{}, fmt.Errorf("store: cannot load profile %q: %w", id, err)
	}
	var meta profile.Metadata
	if err := yaml.Unmarshal([]byte(text), &meta); err != nil {
		return profile.Metadata{}, fmt.Errorf("store: decode %q: %w", id, err)
	}
	return meta, nil
}

// ProfileIDs lists stored ids in ascending order.
func (s *Store) ProfileIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM profiles ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("store: cannot list profiles: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("store: cannot scan profile id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SaveSamples replaces the samples of profile id.
// Errors: ErrNotFound if no profile is stored under id.
func (s *Store) SaveSamples(ctx context.Context, id string, samples []Sample) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var exists int
	if err = tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles WHERE id = ?", id).Scan(&exists); err != nil {
		return fmt.Errorf("store: cannot check profile %q: %w", id, err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM samples WHERE profile_id = ?", id); err != nil {
		return fmt.Errorf("store: cannot clear samples of %q: %w", id, err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO samples (profile_id, x, y, value) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("store: cannot prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, smp := range samples {
		if _, err = stmt.ExecContext(ctx, id, smp.X, smp.Y, smp.Value); err != nil {
			return fmt.Errorf("store: cannot save sample of %q: %w", id, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: cannot commit samples of %q: %w", id, err)
	}
	return nil
}

// Samples returns the samples of profile id ordered by (x, y).
// An existing profile without samples yields an empty slice.
func (s *Store) Samples(ctx context.Context, id string) ([]Sample, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT x, y, value FROM samples WHERE profile_id = ? ORDER BY x, y", id)
	if err != nil {
		return nil, fmt.Errorf("store: cannot query samples of %q: %w", id, err)
	}
	defer rows.Close()

	var out []Sample
	for rows.Next() {
		var smp Sample
		if err := rows.Scan(&smp.X, &smp.Y, &smp.Value); err != nil {
			return nil, fmt.Errorf("store: cannot scan sample: %w", err)
		}
		out = append(out, smp)
	}
	return out, rows.Err()
}
