package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gitadapter "github.com/ceresdesign/ceres-sync/internal/adapters/git"
	"github.com/ceresdesign/ceres-sync/internal/adapters/logging"
	"github.com/ceresdesign/ceres-sync/internal/domain"
	"github.com/go-git/go-git/v5"
)

func newInspector(cfg *domain.SyncConfiguration) *RepositoryInspector {
	return NewRepositoryInspector(cfg, gitadapter.NewProvider(), logging.Nop())
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy clone", func(t *testing.T) {
		hub := fixtureHub(t)
		local := t.TempDir()
		cfg := fixtureConfig(t, hub, local)
		if err := newOrchestrator(cfg).Initialize(ctx); err != nil {
			t.Fatal(err)
		}

		snapshot, err := newInspector(cfg).Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot() error = %v", err)
		}
		if snapshot.CurrentBranch != "main" {
			t.Errorf("CurrentBranch = %q, want %q", snapshot.CurrentBranch, "main")
		}
		if snapshot.RemoteURL != hub {
			t.Errorf("RemoteURL = %q, want %q", snapshot.RemoteURL, hub)
		}
		if snapshot.LastCommit.Message != "seed content" {
			t.Errorf("LastCommit.Message = %q, want %q", snapshot.LastCommit.Message, "seed content")
		}
		if !snapshot.FileStatus.IsClean() {
			t.Errorf("FileStatus = %+v, want clean", snapshot.FileStatus)
		}
	})

	t.Run("repository without remotes", func(t *testing.T) {
		local := fixtureRepo(t, false)
		fixtureCommit(t, local, "tokens.json", "{}", "local only")
		cfg := fixtureConfig(t, "unused", local)

		snapshot, err := newInspector(cfg).Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot() error = %v", err)
		}
		if snapshot.RemoteURL != domain.UnknownRemote {
			t.Errorf("RemoteURL = %q, want %q", snapshot.RemoteURL, domain.UnknownRemote)
		}
	})

	t.Run("unborn repository", func(t *testing.T) {
		local := fixtureRepo(t, false)
		cfg := fixtureConfig(t, "unused", local)

		snapshot, err := newInspector(cfg).Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot() error = %v", err)
		}
		if snapshot.CurrentBranch != "main" {
			t.Errorf("CurrentBranch = %q, want %q", snapshot.CurrentBranch, "main")
		}
		if snapshot.LastCommit.Hash != "" {
			t.Errorf("LastCommit.Hash = %q, want empty", snapshot.LastCommit.Hash)
		}
		if snapshot.LastCommit.CommittedAt.IsZero() {
			t.Error("LastCommit.CommittedAt is zero, want a current timestamp")
		}
	})

	t.Run("not a repository", func(t *testing.T) {
		cfg := fixtureConfig(t, "unused", t.TempDir())
		if _, err := newInspector(cfg).Snapshot(ctx); err == nil {
			t.Error("Snapshot() should fail on a plain directory")
		}
	})
}

func TestHasUncommittedChanges(t *testing.T) {
	ctx := context.Background()

	hub := fixtureHub(t)
	local := t.TempDir()
	cfg := fixtureConfig(t, hub, local)
	if err := newOrchestrator(cfg).Initialize(ctx); err != nil {
		t.Fatal(err)
	}
	inspector := newInspector(cfg)

	dirty, err := inspector.HasUncommittedChanges(ctx)
	if err != nil {
		t.Fatalf("HasUncommittedChanges() error = %v", err)
	}
	if dirty {
		t.Error("HasUncommittedChanges() = true for a fresh clone")
	}

	if err := os.WriteFile(filepath.Join(local, "scratch.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	dirty, err = inspector.HasUncommittedChanges(ctx)
	if err != nil {
		t.Fatalf("HasUncommittedChanges() error = %v", err)
	}
	if !dirty {
		t.Error("HasUncommittedChanges() = false after adding a file")
	}
}

func TestBranchDifference(t *testing.T) {
	ctx := context.Background()

	hub := fixtureHub(t)
	local := t.TempDir()
	cfg := fixtureConfig(t, hub, local)
	if err := newOrchestrator(cfg).Initialize(ctx); err != nil {
		t.Fatal(err)
	}
	inspector := newInspector(cfg)

	t.Run("in sync", func(t *testing.T) {
		status, err := inspector.BranchDifference(ctx)
		if err != nil {
			t.Fatalf("BranchDifference() error = %v", err)
		}
		if !status.IsUpToDate {
			t.Error("IsUpToDate = false right after clone")
		}
		if status.RemoteBranchRef != "origin/main" {
			t.Errorf("RemoteBranchRef = %q, want %q", status.RemoteBranchRef, "origin/main")
		}
	})

	t.Run("behind after hub advances", func(t *testing.T) {
		producer := t.TempDir()
		if _, err := git.PlainClone(producer, false, &git.CloneOptions{URL: hub}); err != nil {
			t.Fatal(err)
		}
		fixtureCommit(t, producer, "extras.json", "{}", "add extras")
		producerRepo, err := git.PlainOpen(producer)
		if err != nil {
			t.Fatal(err)
		}
		if err := producerRepo.Push(&git.PushOptions{}); err != nil {
			t.Fatal(err)
		}

		status, err := inspector.BranchDifference(ctx)
		if err != nil {
			t.Fatalf("BranchDifference() error = %v", err)
		}
		if status.IsUpToDate {
			t.Error("IsUpToDate = true while the hub is ahead")
		}
	})
}

func TestVerifyIntegrity(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy clone", func(t *testing.T) {
		cfg := fixtureConfig(t, fixtureHub(t), t.TempDir())
		if err := newOrchestrator(cfg).Initialize(ctx); err != nil {
			t.Fatal(err)
		}

		report := newInspector(cfg).VerifyIntegrity(ctx)
		if !report.Valid {
			t.Errorf("VerifyIntegrity() issues = %v, want none", report.Issues)
		}
	})

	t.Run("repository without remotes", func(t *testing.T) {
		local := fixtureRepo(t, false)
		fixtureCommit(t, local, "tokens.json", "{}", "local only")
		cfg := fixtureConfig(t, "unused", local)

		report := newInspector(cfg).VerifyIntegrity(ctx)
		if report.Valid {
			t.Fatal("VerifyIntegrity() = valid for a repository without remotes")
		}
		want := []string{
			"No remote repositories configured",
			"Cannot access remote repository",
		}
		if len(report.Issues) != len(want) {
			t.Fatalf("Issues = %v, want %v", report.Issues, want)
		}
		for i := range want {
			if report.Issues[i] != want[i] {
				t.Errorf("Issues[%d] = %q, want %q", i, report.Issues[i], want[i])
			}
		}
	})

	t.Run("not a repository", func(t *testing.T) {
		cfg := fixtureConfig(t, "unused", t.TempDir())

		report := newInspector(cfg).VerifyIntegrity(ctx)
		if report.Valid {
			t.Fatal("VerifyIntegrity() = valid for a plain directory")
		}
		if len(report.Issues) != 3 {
			t.Errorf("Issues = %v, want all three checks to fail", report.Issues)
		}
	})
}
