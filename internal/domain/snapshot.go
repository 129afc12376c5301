package domain

import "time"

// UnknownRemote is reported when the working copy has no origin remote.
const UnknownRemote = "unknown"

// Signature identifies the author of a generated commit.
type Signature struct {
	Name  string
	Email string
}

// CommitInfo describes the most recent commit of a working copy.
// All fields are zero-valued (with CommittedAt set to the inspection time)
// when the working copy has no commits yet.
type CommitInfo struct {
	Hash        string
	Message     string
	AuthorName  string
	CommittedAt time.Time
}

// WorktreeStatus classifies every changed file of a working copy into four
// disjoint ordered lists.
type WorktreeStatus struct {
	Modified  []string
	Added     []string
	Deleted   []string
	Untracked []string
}

// IsClean reports whether the working copy has no changed files.
func (s WorktreeStatus) IsClean() bool {
	return len(s.Modified) == 0 && len(s.Added) == 0 && len(s.Deleted) == 0 && len(s.Untracked) == 0
}

// Count returns the total number of changed files.
func (s WorktreeStatus) Count() int {
	return len(s.Modified) + len(s.Added) + len(s.Deleted) + len(s.Untracked)
}

// Paths returns all changed paths in status order: modified, added, deleted,
// untracked.
func (s WorktreeStatus) Paths() []string {
	paths := make([]string, 0, s.Count())
	paths = append(paths, s.Modified...)
	paths = append(paths, s.Added...)
	paths = append(paths, s.Deleted...)
	paths = append(paths, s.Untracked...)
	return paths
}

// RepositorySnapshot is a read-only inspection of a working copy, produced
// fresh on every call and never cached.
type RepositorySnapshot struct {
	CurrentBranch string
	RemoteURL     string
	LastCommit    CommitInfo
	FileStatus    WorktreeStatus
}

// SyncStatus is a lightweight up-to-date check against the last-known remote
// state.
type SyncStatus struct {
	LocalBranch     string
	RemoteBranchRef string
	IsUpToDate      bool
	HasLocalChanges bool
}

// IntegrityReport collects the advisory results of a composite integrity
// check. Verification never aborts early; every failed sub-check appends its
// own issue.
type IntegrityReport struct {
	Valid  bool
	Issues []string
}
