// Package sqlite provides the SQLite-backed offline book store. The store is
// a plain local file; amounts are persisted as decimal strings, never as
// float columns.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	portsrepo "github.com/tresahq/cashbook_cli/internal/core/ports/repositories"
)

// Ensure LocalBookRepository implements the repository facade
var _ portsrepo.LocalBookRepositoryFacade = (*LocalBookRepository)(nil)

// LocalBookRepository implements the offline store on SQLite.
type LocalBookRepository struct {
	db *sql.DB
}

// New opens (creating if needed) the offline store at dbPath and runs
// migrations.
func New(dbPath string) (*LocalBookRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open offline store: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &LocalBookRepository{db: db}, nil
}

// Close closes the database connection.
func (r *LocalBookRepository) Close() error {
	return r.db.Close()
}
