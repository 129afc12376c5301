package cmd

import (
	"fmt"

	"github.com/ceresdesign/ceres-sync/internal/domain"
	"github.com/spf13/cobra"
)

var pushMessage string

// pushCmd represents the push command
var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Commit and push local content changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		orchestrator := newOrchestrator(cfg, false)
		outcome, err := orchestrator.Push(ctx, pushMessage)
		if err != nil {
			return err
		}
		recordHistory(ctx, domain.OperationPush, outcome)

		if !outcome.Succeeded {
			printOutcomeErrors(outcome)
			return fmt.Errorf("push failed")
		}

		if len(outcome.ChangedPaths) == 0 {
			fmt.Println(successStyle.Render("Nothing to push."))
		} else {
			fmt.Println(successStyle.Render(fmt.Sprintf("Pushed %d file(s) to %s:", len(outcome.ChangedPaths), cfg.RemoteBranchRef())))
			for _, path := range outcome.ChangedPaths {
				fmt.Println("  " + path)
			}
		}

		_ = notifier(cfg).NotifyPushComplete(len(outcome.ChangedPaths), cfg.Branch)
		return nil
	},
}

func init() {
	pushCmd.Flags().StringVar(&pushMessage, "message", "", "Commit message (default: generated timestamp message)")
}
