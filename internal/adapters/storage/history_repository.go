package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ceresdesign/ceres-sync/internal/domain"
	"github.com/ceresdesign/ceres-sync/internal/ports"
)

// historyRepository implements ports.HistoryRepository using SQLite.
type historyRepository struct {
	db *sql.DB
}

// newHistoryRepository creates a new history repository.
func newHistoryRepository(db *sql.DB) ports.HistoryRepository {
	return &historyRepository{db: db}
}

// Save persists one history record.
func (r *historyRepository) Save(ctx context.Context, record *domain.SyncRecord) error {
	query := `
		INSERT INTO sync_history (id, operation, succeeded, changed_paths, errors, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	changedJSON, _ := json.Marshal(record.ChangedPaths)
	errorsJSON, _ := json.Marshal(record.Errors)

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.Operation,
		record.Succeeded,
		string(changedJSON),
		string(errorsJSON),
		record.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save sync record: %w", err)
	}

	return nil
}

// FindRecent returns up to limit records, most recent first.
func (r *historyRepository) FindRecent(ctx context.Context, limit int) ([]*domain.SyncRecord, error) {
	query := `
		SELECT id, operation, succeeded, changed_paths, errors, completed_at
		FROM sync_history
		ORDER BY completed_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync history: %w", err)
	}
	defer rows.Close()

	var records []*domain.SyncRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// scanRecord maps one row to a domain record.
func scanRecord(rows *sql.Rows) (*domain.SyncRecord, error) {
	var record domain.SyncRecord
	var changedJSON, errorsJSON string

	err := rows.Scan(
		&record.ID,
		&record.Operation,
		&record.Succeeded,
		&changedJSON,
		&errorsJSON,
		&record.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan sync record: %w", err)
	}

	if changedJSON != "" {
		if err := json.Unmarshal([]byte(changedJSON), &record.ChangedPaths); err != nil {
			return nil, fmt.Errorf("failed to decode changed paths: %w", err)
		}
	}
	if errorsJSON != "" {
		if err := json.Unmarshal([]byte(errorsJSON), &record.Errors); err != nil {
			return nil, fmt.Errorf("failed to decode errors: %w", err)
		}
	}

	return &record, nil
}
