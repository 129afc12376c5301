// Package ports defines the interfaces (driven ports) between the
// synchronization core and external infrastructure: the version-control
// engine, the history store and the logging sink.
package ports

import (
	"context"

	"github.com/ceresdesign/ceres-sync/internal/domain"
)

// Remote is one configured remote of a working copy.
type Remote struct {
	Name string
	URL  string
}

// RepositoryClient exposes the version-control operations the core needs
// against one working copy. Implementations are bound to a single path;
// callers construct a fresh client per operation rather than sharing a
// long-lived handle.
type RepositoryClient interface {
	// CurrentBranch returns the short name of the checked-out branch.
	CurrentBranch(ctx context.Context) (string, error)

	// Remotes lists the configured remotes.
	Remotes(ctx context.Context) ([]Remote, error)

	// LastCommit returns the most recent commit, or domain.ErrNoCommits
	// when the working copy has none.
	LastCommit(ctx context.Context) (domain.CommitInfo, error)

	// Status classifies every changed file of the working tree.
	Status(ctx context.Context) (domain.WorktreeStatus, error)

	// AheadBehind returns the commit counts relative to origin/branch as
	// last fetched. Both are zero when no remote-tracking ref exists.
	AheadBehind(ctx context.Context, branch string) (ahead, behind int, err error)

	// Fetch updates the remote-tracking refs from origin.
	Fetch(ctx context.Context) error

	// Pull fast-forwards the working copy from origin/branch and reports
	// the changed files in diff order. An already-up-to-date pull returns
	// an empty change list and no error.
	Pull(ctx context.Context, branch string) ([]domain.FileChange, error)

	// StageAll stages every change in the working tree.
	StageAll(ctx context.Context) error

	// Commit records the staged changes and returns the new commit hash.
	Commit(ctx context.Context, message string, author domain.Signature) (string, error)

	// Push publishes local commits to origin.
	Push(ctx context.Context, branch string) error

	// UpdateSubmodules initializes and updates every submodule of the
	// working copy.
	UpdateSubmodules(ctx context.Context) error
}

// Provider opens path-bound repository clients and performs the one
// operation that exists before any working copy does: clone.
type Provider interface {
	// Open binds a client to an existing working copy.
	Open(path string) (RepositoryClient, error)

	// Clone creates a new working copy of url at path, checked out at
	// branch.
	Clone(ctx context.Context, url, path, branch string) error
}
