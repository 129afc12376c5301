package domain

import "time"

// Workflow operations recorded in the sync history.
const (
	OperationSync = "sync"
	OperationPush = "push"
)

// SyncRecord is one persisted history entry for a sync or push invocation.
type SyncRecord struct {
	ID           string
	Operation    string
	Succeeded    bool
	ChangedPaths []string
	Errors       []string
	CompletedAt  time.Time
}

// NewSyncRecord builds a history record from a workflow outcome.
func NewSyncRecord(operation string, outcome *SyncOutcome) *SyncRecord {
	return &SyncRecord{
		ID:           generateID(),
		Operation:    operation,
		Succeeded:    outcome.Succeeded,
		ChangedPaths: outcome.ChangedPaths,
		Errors:       outcome.ErrorMessages,
		CompletedAt:  outcome.CompletedAt,
	}
}
