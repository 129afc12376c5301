package cmd

import (
	"fmt"

	"github.com/ceresdesign/ceres-sync/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the working copy's sync status",
	Long:  `Display branch, remote, last commit and changed files of the local content working copy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		orchestrator := newOrchestrator(cfg, false)
		inspector := newInspector(cfg)

		// The up-to-date check and the snapshot are independent reads.
		var (
			status   *domain.SyncStatus
			snapshot *domain.RepositorySnapshot
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			status, err = orchestrator.Status(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			snapshot, err = inspector.Snapshot(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		printStatus(cfg, status, snapshot)
		return nil
	},
}

// printStatus renders the combined status report.
func printStatus(cfg *domain.SyncConfiguration, status *domain.SyncStatus, snapshot *domain.RepositorySnapshot) {
	fmt.Printf("Branch:  %s (tracking %s)\n", snapshot.CurrentBranch, status.RemoteBranchRef)
	fmt.Printf("Remote:  %s\n", snapshot.RemoteURL)
	if snapshot.LastCommit.Hash != "" {
		fmt.Printf("Commit:  %s %s (%s, %s)\n",
			shortHash(snapshot.LastCommit.Hash),
			snapshot.LastCommit.Message,
			snapshot.LastCommit.AuthorName,
			snapshot.LastCommit.CommittedAt.Format("2006-01-02 15:04"))
	} else {
		fmt.Println("Commit:  (none)")
	}

	if status.IsUpToDate {
		fmt.Println(successStyle.Render("Up to date with " + status.RemoteBranchRef))
	} else {
		fmt.Println(errorStyle.Render("Out of sync with " + status.RemoteBranchRef))
	}

	if !status.HasLocalChanges {
		fmt.Println(successStyle.Render("Working copy clean"))
		return
	}

	printFileList("Modified", snapshot.FileStatus.Modified)
	printFileList("Added", snapshot.FileStatus.Added)
	printFileList("Deleted", snapshot.FileStatus.Deleted)
	printFileList("Untracked", snapshot.FileStatus.Untracked)
}

// printFileList renders one status section, skipping empty ones.
func printFileList(label string, paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Printf("%s (%d):\n", label, len(paths))
	for _, path := range paths {
		fmt.Println("  " + path)
	}
}

// shortHash shortens a commit hash for display.
func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
