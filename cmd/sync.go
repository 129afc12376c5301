package cmd

import (
	"fmt"

	"github.com/ceresdesign/ceres-sync/internal/domain"
	"github.com/spf13/cobra"
)

var syncVerbose bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull the latest content from the source repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		orchestrator := newOrchestrator(cfg, syncVerbose)
		outcome := orchestrator.Sync(ctx)
		recordHistory(ctx, domain.OperationSync, outcome)

		if !outcome.Succeeded {
			printOutcomeErrors(outcome)
			return fmt.Errorf("sync failed")
		}

		if len(outcome.ChangedPaths) == 0 {
			fmt.Println(successStyle.Render("Already up to date."))
		} else {
			fmt.Println(successStyle.Render(fmt.Sprintf("Synced %d file(s):", len(outcome.ChangedPaths))))
			for _, path := range outcome.ChangedPaths {
				fmt.Println("  " + path)
			}
		}

		_ = notifier(cfg).NotifySyncComplete(len(outcome.ChangedPaths))
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncVerbose, "verbose", false, "Emit informational log lines")
}
