// Package storage provides the SQLite implementation of the storage ports.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/ceresdesign/ceres-sync/internal/ports"
	_ "modernc.org/sqlite"
)

// sqliteStorage implements the ports.Storage interface using SQLite.
type sqliteStorage struct {
	db          *sql.DB
	historyRepo ports.HistoryRepository
}

// Ensure sqliteStorage implements ports.Storage.
var _ ports.Storage = (*sqliteStorage)(nil)

// New creates a new SQLite storage instance at dbPath.
func New(dbPath string) (ports.Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	storage := &sqliteStorage{
		db:          db,
		historyRepo: newHistoryRepository(db),
	}

	if err := storage.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return storage, nil
}

// NewMemory creates an in-memory SQLite storage instance for testing.
func NewMemory() (ports.Storage, error) {
	return New(":memory:")
}

// History returns the history repository.
func (s *sqliteStorage) History() ports.HistoryRepository {
	return s.historyRepo
}

// Close closes the database connection.
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

// Migrate creates the database schema.
func (s *sqliteStorage) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sync_history (
		id TEXT PRIMARY KEY,
		operation TEXT NOT NULL,
		succeeded INTEGER NOT NULL,
		changed_paths TEXT,
		errors TEXT,
		completed_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sync_history_completed ON sync_history(completed_at);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}
