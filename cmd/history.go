package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sync and push outcomes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.History().FindRecent(ctx, historyLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println(dimStyle.Render("No sync history yet."))
			return nil
		}

		for _, record := range records {
			status := successStyle.Render("ok")
			if !record.Succeeded {
				status = errorStyle.Render("failed")
			}
			fmt.Printf("%s  %-4s  %s  %d file(s)\n",
				record.CompletedAt.Format("2006-01-02 15:04:05"),
				record.Operation,
				status,
				len(record.ChangedPaths))
			if len(record.Errors) > 0 {
				fmt.Println(dimStyle.Render("    " + strings.Join(record.Errors, "; ")))
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of records to show")
}
