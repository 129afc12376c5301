package ports

import (
	"context"

	"github.com/ceresdesign/ceres-sync/internal/domain"
)

// HistoryRepository persists the outcomes of past sync and push runs.
// This is a driven port (implemented by adapters).
type HistoryRepository interface {
	// Save persists one history record.
	Save(ctx context.Context, record *domain.SyncRecord) error

	// FindRecent returns up to limit records, most recent first.
	FindRecent(ctx context.Context, limit int) ([]*domain.SyncRecord, error)
}

// Storage is the combined storage interface.
type Storage interface {
	// History provides access to the sync history.
	History() HistoryRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
