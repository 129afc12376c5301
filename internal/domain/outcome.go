package domain

import "time"

// SyncOutcome is the result of one state-changing workflow invocation.
// Succeeded is true exactly when ErrorMessages is empty; ChangedPaths keeps
// whatever was collected before a failure, in the order it was reported.
type SyncOutcome struct {
	Succeeded     bool      `json:"succeeded"`
	ChangedPaths  []string  `json:"changedPaths"`
	ErrorMessages []string  `json:"errorMessages"`
	CompletedAt   time.Time `json:"completedAt"`
}

// SucceededOutcome builds a successful outcome. Zero changed paths is a
// success, not an error.
func SucceededOutcome(changedPaths []string) *SyncOutcome {
	return &SyncOutcome{
		Succeeded:    true,
		ChangedPaths: changedPaths,
		CompletedAt:  time.Now(),
	}
}

// FailedOutcome builds a failed outcome retaining partial progress.
func FailedOutcome(changedPaths []string, messages ...string) *SyncOutcome {
	return &SyncOutcome{
		Succeeded:     false,
		ChangedPaths:  changedPaths,
		ErrorMessages: messages,
		CompletedAt:   time.Now(),
	}
}
