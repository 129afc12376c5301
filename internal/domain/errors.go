package domain

import (
	"errors"
	"fmt"
)

// ErrAutoCommitDisabled is returned by the push workflow when the
// configuration has auto-commit turned off. It is a pure precondition
// failure: no working-copy operation has been attempted.
var ErrAutoCommitDisabled = errors.New("auto-commit is disabled for this configuration")

// ErrNoCommits reports that a working copy has no commits yet.
var ErrNoCommits = errors.New("repository has no commits")

// ConfigurationError reports a missing or invalid persisted configuration.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// RepositoryAccessError reports a failed query against a local working copy.
type RepositoryAccessError struct {
	Path string
	Err  error
}

func (e *RepositoryAccessError) Error() string {
	return fmt.Sprintf("cannot access repository at %s: %v", e.Path, e.Err)
}

func (e *RepositoryAccessError) Unwrap() error { return e.Err }

// RemoteAccessError reports a failed network operation against a remote.
type RemoteAccessError struct {
	Op  string
	Err error
}

func (e *RemoteAccessError) Error() string {
	return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
}

func (e *RemoteAccessError) Unwrap() error { return e.Err }

// NotAGitRepositoryError reports that initialization found a non-empty
// directory that is not a usable working copy. Nothing is overwritten.
type NotAGitRepositoryError struct {
	Path string
}

func (e *NotAGitRepositoryError) Error() string {
	return fmt.Sprintf("%s exists and is not empty, but is not a git repository", e.Path)
}

// InitializationError wraps any failure of the multi-step initialize
// workflow, preserving the original cause.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialization failed: %v", e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }
