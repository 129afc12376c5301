package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ceresdesign/ceres-sync/internal/domain"
	"github.com/ceresdesign/ceres-sync/internal/ports"
)

// SyncOrchestrator owns one sync configuration and drives the mutating
// workflows: initialize, sync and push. The provider is the only long-lived
// git handle and is used solely for the initial clone; every other operation
// opens a fresh client bound to the local content path.
type SyncOrchestrator struct {
	cfg *domain.SyncConfiguration
	git ports.Provider
	log ports.Logger
}

// NewSyncOrchestrator creates an orchestrator for the given configuration.
func NewSyncOrchestrator(cfg *domain.SyncConfiguration, git ports.Provider, log ports.Logger) *SyncOrchestrator {
	return &SyncOrchestrator{cfg: cfg, git: git, log: log}
}

// Initialize attaches the local content path to the source repository: a
// submodule reference is initialized through its parent repository, an empty
// directory receives a clone, and an existing working copy is verified and
// left alone. Any failure is wrapped in an InitializationError.
func (o *SyncOrchestrator) Initialize(ctx context.Context) error {
	if err := o.initialize(ctx); err != nil {
		o.log.Errorf("initialize failed: %v", err)
		return &domain.InitializationError{Err: err}
	}
	return nil
}

func (o *SyncOrchestrator) initialize(ctx context.Context) error {
	path := o.cfg.LocalContentPath
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create content directory: %w", err)
	}

	if isSubmoduleRef(path) {
		o.log.Infof("submodule reference detected at %s", path)
		parent, err := o.git.Open(filepath.Dir(path))
		if err != nil {
			return err
		}
		return parent.UpdateSubmodules(ctx)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("read content directory: %w", err)
	}
	if len(entries) == 0 {
		o.log.Infof("cloning %s into %s", o.cfg.SourceRepositoryLocation, path)
		return o.git.Clone(ctx, o.cfg.SourceRepositoryLocation, path, o.cfg.Branch)
	}

	// Non-empty: must already be a usable working copy. Nothing is ever
	// overwritten or deleted here.
	client, err := o.git.Open(path)
	if err == nil {
		_, err = client.Status(ctx)
	}
	if err != nil {
		return &domain.NotAGitRepositoryError{Path: path}
	}
	o.log.Infof("attached to existing working copy at %s", path)
	return nil
}

// Sync pulls the configured branch from origin and reports the changed
// files. Zero changes is a success. Expected failures are reported through
// the outcome, never raised.
func (o *SyncOrchestrator) Sync(ctx context.Context) *domain.SyncOutcome {
	client, err := o.git.Open(o.cfg.LocalContentPath)
	if err != nil {
		o.log.Errorf("sync failed: %v", err)
		return domain.FailedOutcome(nil, err.Error())
	}

	changes, err := client.Pull(ctx, o.cfg.Branch)
	paths := make([]string, 0, len(changes))
	for _, change := range changes {
		paths = append(paths, change.Path)
	}
	if err != nil {
		o.log.Errorf("sync failed: %v", err)
		return domain.FailedOutcome(paths, err.Error())
	}

	if filter := o.cfg.Filter(); !filter.Empty() {
		paths = filter.Apply(paths)
	}

	o.log.Infof("sync complete: %d changed file(s)", len(paths))
	return domain.SucceededOutcome(paths)
}

// Push stages, commits and pushes local changes. It returns
// domain.ErrAutoCommitDisabled before touching the working copy when the
// configuration forbids auto-commit; every other failure is reported through
// the outcome. A clean working tree short-circuits to success.
func (o *SyncOrchestrator) Push(ctx context.Context, message string) (*domain.SyncOutcome, error) {
	if !o.cfg.AutoCommitEnabled {
		return nil, domain.ErrAutoCommitDisabled
	}

	client, err := o.git.Open(o.cfg.LocalContentPath)
	if err != nil {
		o.log.Errorf("push failed: %v", err)
		return domain.FailedOutcome(nil, err.Error()), nil
	}

	status, err := client.Status(ctx)
	if err != nil {
		o.log.Errorf("push failed: %v", err)
		return domain.FailedOutcome(nil, err.Error()), nil
	}
	if status.IsClean() {
		o.log.Infof("nothing to push")
		return domain.SucceededOutcome(nil), nil
	}

	paths := status.Paths()
	if err := client.StageAll(ctx); err != nil {
		o.log.Errorf("push failed: %v", err)
		return domain.FailedOutcome(paths, err.Error()), nil
	}

	if message == "" {
		message = "Content sync update - " + time.Now().UTC().Format(time.RFC3339)
	}
	hash, err := client.Commit(ctx, message, o.cfg.Author())
	if err != nil {
		o.log.Errorf("push failed: %v", err)
		return domain.FailedOutcome(paths, err.Error()), nil
	}
	o.log.Infof("committed %s: %s", shortHash(hash), message)

	if err := client.Push(ctx, o.cfg.Branch); err != nil {
		o.log.Errorf("push failed: %v", err)
		return domain.FailedOutcome(paths, err.Error()), nil
	}

	o.log.Infof("pushed %d file(s) to %s", len(paths), o.cfg.RemoteBranchRef())
	return domain.SucceededOutcome(paths), nil
}

// Status combines a working-tree status query and a branch query into a
// cheap local-only check. No fetch is performed, so ahead/behind reflect the
// last-known remote state; BranchDifference on the inspector is the
// fetching variant.
func (o *SyncOrchestrator) Status(ctx context.Context) (*domain.SyncStatus, error) {
	client, err := o.git.Open(o.cfg.LocalContentPath)
	if err != nil {
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
	ahead, behind, err := client.AheadBehind(ctx, o.cfg.Branch)
	if err != nil {
		return nil, err
	}

	return &domain.SyncStatus{
		LocalBranch:     branch,
		RemoteBranchRef: o.cfg.RemoteBranchRef(),
		IsUpToDate:      ahead == 0 && behind == 0,
		HasLocalChanges: !status.IsClean(),
	}, nil
}

// isSubmoduleRef reports whether the .git entry at path is a gitdir pointer
// file into a parent repository. Absence or a read failure means "not a
// submodule".
func isSubmoduleRef(path string) bool {
	gitPath := filepath.Join(path, ".git")
	info, err := os.Stat(gitPath)
	if err != nil || info.IsDir() {
		return false
	}
	content, err := os.ReadFile(gitPath)
	if err != nil {
		return false
	}
	return strings.HasPrefix(string(content), "gitdir:")
}

// shortHash shortens a commit hash for log lines.
func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
