// Package cmd provides the CLI commands for ceres-sync.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ceresdesign/ceres-sync/internal/adapters/git"
	"github.com/ceresdesign/ceres-sync/internal/adapters/logging"
	"github.com/ceresdesign/ceres-sync/internal/adapters/notification"
	"github.com/ceresdesign/ceres-sync/internal/adapters/storage"
	"github.com/ceresdesign/ceres-sync/internal/config"
	"github.com/ceresdesign/ceres-sync/internal/domain"
	"github.com/ceresdesign/ceres-sync/internal/ports"
	"github.com/ceresdesign/ceres-sync/internal/services"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Global flags
	configPath string
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ceres-sync",
	Short: "Synchronize shared design content between repositories",
	Long: `ceres-sync keeps a local copy of a shared design-content repository in
sync with its hub: it clones or attaches a working copy, pulls updates,
and stages, commits and pushes local changes back.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Errors print as a single red line; no stack traces.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the sync configuration file (default: .ceres-sync.json)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("ceres-sync\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfiguration reads the persisted configuration honoring --config.
func loadConfiguration() (*domain.SyncConfiguration, error) {
	return config.Load(configPath)
}

// newOrchestrator wires an orchestrator for the configuration. verbose is
// OR-ed with the configured setting so --verbose can force it on.
func newOrchestrator(cfg *domain.SyncConfiguration, verbose bool) *services.SyncOrchestrator {
	log := logging.New(cfg.Verbose || verbose)
	return services.NewSyncOrchestrator(cfg, git.NewProvider(), log)
}

// newInspector wires an inspector for the configuration.
func newInspector(cfg *domain.SyncConfiguration) *services.RepositoryInspector {
	return services.NewRepositoryInspector(cfg, git.NewProvider(), logging.New(cfg.Verbose))
}

// recordHistory saves a workflow outcome to the history store. History is
// best effort: a storage failure is reported but never fails the command.
func recordHistory(ctx context.Context, operation string, outcome *domain.SyncOutcome) {
	store, err := storage.New(config.HistoryPath(configPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, dimStyle.Render("warning: cannot open sync history: "+err.Error()))
		return
	}
	defer store.Close()

	record := domain.NewSyncRecord(operation, outcome)
	if err := store.History().Save(ctx, record); err != nil {
		fmt.Fprintln(os.Stderr, dimStyle.Render("warning: cannot save sync history: "+err.Error()))
	}
}

// notifier builds the desktop notifier for the configuration.
func notifier(cfg *domain.SyncConfiguration) *notification.Notifier {
	return notification.New(cfg.NotificationsEnabled)
}

// printOutcomeErrors renders every error message of a failed outcome.
func printOutcomeErrors(outcome *domain.SyncOutcome) {
	for _, msg := range outcome.ErrorMessages {
		fmt.Fprintln(os.Stderr, errorStyle.Render(msg))
	}
}

// openHistory opens the history store for reading.
func openHistory() (ports.Storage, error) {
	return storage.New(config.HistoryPath(configPath))
}
