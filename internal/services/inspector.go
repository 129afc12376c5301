// Package services implements the synchronization use cases on top of the
// repository ports.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/ceresdesign/ceres-sync/internal/domain"
	"github.com/ceresdesign/ceres-sync/internal/ports"
	"golang.org/x/sync/errgroup"
)

// Issue strings reported by VerifyIntegrity.
const (
	issueNotARepository = "Not a valid git repository"
	issueNoRemotes      = "No remote repositories configured"
	issueRemoteAccess   = "Cannot access remote repository"
)

// RepositoryInspector answers read-only questions about the configured
// working copy. It never mutates it.
type RepositoryInspector struct {
	cfg *domain.SyncConfiguration
	git ports.Provider
	log ports.Logger
}

// NewRepositoryInspector creates an inspector for the configuration's local
// content path.
func NewRepositoryInspector(cfg *domain.SyncConfiguration, git ports.Provider, log ports.Logger) *RepositoryInspector {
	return &RepositoryInspector{cfg: cfg, git: git, log: log}
}

// Snapshot inspects the working copy. Its four queries (branch, remotes,
// last commit, worktree status) are independent reads and run concurrently.
func (i *RepositoryInspector) Snapshot(ctx context.Context) (*domain.RepositorySnapshot, error) {
	client, err := i.git.Open(i.cfg.LocalContentPath)
	if err != nil {
		return nil, err
	}

	var (
		branch  string
		remotes []ports.Remote
		commit  domain.CommitInfo
		status  domain.WorktreeStatus
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		branch, err = client.CurrentBranch(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		remotes, err = client.Remotes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		commit, err = client.LastCommit(gctx)
		if errors.Is(err, domain.ErrNoCommits) {
			commit = domain.CommitInfo{CommittedAt: time.Now()}
			return nil
		}
		return err
	})
	g.Go(func() error {
		var err error
		status, err = client.Status(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, wrapAccess(i.cfg.LocalContentPath, err)
	}

	remoteURL := domain.UnknownRemote
	for _, r := range remotes {
		if r.Name == "origin" {
			remoteURL = r.URL
			break
		}
	}

	i.log.Infof("inspected %s: branch %s, %d changed file(s)",
		i.cfg.LocalContentPath, branch, status.Count())

	return &domain.RepositorySnapshot{
		CurrentBranch: branch,
		RemoteURL:     remoteURL,
		LastCommit:    commit,
		FileStatus:    status,
	}, nil
}

// HasUncommittedChanges reports whether the working tree has at least one
// modified, added, deleted or untracked file.
func (i *RepositoryInspector) HasUncommittedChanges(ctx context.Context) (bool, error) {
	client, err := i.git.Open(i.cfg.LocalContentPath)
	if err != nil {
		return false, err
	}
	status, err := client.Status(ctx)
	if err != nil {
		return false, wrapAccess(i.cfg.LocalContentPath, err)
	}
	return !status.IsClean(), nil
}

// BranchDifference fetches from the remote and reports the up-to-date state
// of the configured branch. The fetch is network-dependent and may fail with
// a RemoteAccessError.
func (i *RepositoryInspector) BranchDifference(ctx context.Context) (*domain.SyncStatus, error) {
	client, err := i.git.Open(i.cfg.LocalContentPath)
	if err != nil {
		return nil, err
	}
	if err := client.Fetch(ctx); err != nil {
		return nil, err
	}

	branch, err := client.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}
	status, err := client.Status(ctx)
	if err != nil {
		return nil, err
	}
	ahead, behind, err := client.AheadBehind(ctx, i.cfg.Branch)
	if err != nil {
		return nil, err
	}

	return &domain.SyncStatus{
		LocalBranch:     branch,
		RemoteBranchRef: i.cfg.RemoteBranchRef(),
		IsUpToDate:      ahead == 0 && behind == 0,
		HasLocalChanges: !status.IsClean(),
	}, nil
}

// VerifyIntegrity runs the composite advisory check: valid working copy, at
// least one remote configured, remote reachable. It never raises; every
// failed sub-check appends its own issue.
func (i *RepositoryInspector) VerifyIntegrity(ctx context.Context) *domain.IntegrityReport {
	var issues []string

	client, err := i.git.Open(i.cfg.LocalContentPath)
	if err != nil {
		client = nil
	}

	if client == nil {
		issues = append(issues, issueNotARepository)
	} else if _, err := client.Status(ctx); err != nil {
		issues = append(issues, issueNotARepository)
	}

	if client == nil {
		issues = append(issues, issueNoRemotes)
	} else if remotes, err := client.Remotes(ctx); err != nil || len(remotes) == 0 {
		issues = append(issues, issueNoRemotes)
	}

	if client == nil {
		issues = append(issues, issueRemoteAccess)
	} else if err := client.Fetch(ctx); err != nil {
		issues = append(issues, issueRemoteAccess)
	}

	for _, issue := range issues {
		i.log.Errorf("integrity: %s", issue)
	}

	return &domain.IntegrityReport{Valid: len(issues) == 0, Issues: issues}
}

// wrapAccess surfaces err as a RepositoryAccessError unless it already is
// one of the taxonomy kinds.
func wrapAccess(path string, err error) error {
	var repoErr *domain.RepositoryAccessError
	var remoteErr *domain.RemoteAccessError
	if errors.As(err, &repoErr) || errors.As(err, &remoteErr) {
		return err
	}
	return &domain.RepositoryAccessError{Path: path, Err: err}
}
