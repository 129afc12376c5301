package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/ceresdesign/ceres-sync/internal/adapters/git"
	"github.com/ceresdesign/ceres-sync/internal/config"
	"github.com/ceresdesign/ceres-sync/internal/domain"
	"github.com/spf13/cobra"
)

var (
	initRepo      string
	initPath      string
	initBranch    string
	initSubmodule bool
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a content working copy",
	Long: `Build a sync configuration, attach the local content path to the source
repository (clone, existing working copy, or submodule) and persist the
configuration to .ceres-sync.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := domain.NewSyncConfiguration(initRepo, initPath)
		if err != nil {
			return err
		}
		cfg.Branch = initBranch

		if initSubmodule {
			parentDir := filepath.Dir(cfg.LocalContentPath)
			relPath := filepath.Base(cfg.LocalContentPath)
			if err := git.AddSubmodule(ctx, parentDir, cfg.SourceRepositoryLocation, relPath, cfg.Branch); err != nil {
				return err
			}
		} else {
			orchestrator := newOrchestrator(cfg, false)
			if err := orchestrator.Initialize(ctx); err != nil {
				return err
			}
		}

		if err := config.Save(configPath, cfg); err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Initialized content sync: %s -> %s (branch %s)",
			cfg.SourceRepositoryLocation, cfg.LocalContentPath, cfg.Branch)))
		fmt.Println(dimStyle.Render("Configuration written to " + config.Resolve(configPath)))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initRepo, "repo", "", "Source repository URL or path (required)")
	initCmd.Flags().StringVar(&initPath, "path", "", "Local content directory (required)")
	initCmd.Flags().StringVar(&initBranch, "branch", domain.DefaultBranch, "Branch to synchronize")
	initCmd.Flags().BoolVar(&initSubmodule, "submodule", false, "Add the content as a submodule of the enclosing repository")
	_ = initCmd.MarkFlagRequired("repo")
	_ = initCmd.MarkFlagRequired("path")
}
