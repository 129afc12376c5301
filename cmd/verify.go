package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the integrity of the content working copy",
	Long:  `Run the advisory integrity checks: valid working copy, configured remote, reachable remote.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		report := newInspector(cfg).VerifyIntegrity(ctx)
		if report.Valid {
			fmt.Println(successStyle.Render("Working copy is healthy."))
			return nil
		}

		for _, issue := range report.Issues {
			fmt.Println(errorStyle.Render("✗ " + issue))
		}
		return fmt.Errorf("integrity check found %d issue(s)", len(report.Issues))
	},
}
