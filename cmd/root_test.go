package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "ceres-sync", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage, "usage noise on errors should be suppressed")
	assert.True(t, rootCmd.SilenceErrors, "errors are rendered by Execute, not cobra")
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}

func TestRegisteredCommands(t *testing.T) {
	want := []string{"init", "sync", "status", "push", "verify", "history"}
	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		assert.True(t, registered[name], "command %q is not registered", name)
	}
}

func TestInitCommandFlags(t *testing.T) {
	flags := initCmd.Flags()
	for _, name := range []string{"repo", "path", "branch", "submodule"} {
		require.NotNil(t, flags.Lookup(name), "init is missing the --%s flag", name)
	}
	assert.Equal(t, "main", flags.Lookup("branch").DefValue)

	required := func(name string) bool {
		annotations := flags.Lookup(name).Annotations
		return len(annotations[cobra.BashCompOneRequiredFlag]) > 0
	}
	assert.True(t, required("repo"), "--repo should be required")
	assert.True(t, required("path"), "--path should be required")
}

func TestCommandFlags(t *testing.T) {
	assert.NotNil(t, syncCmd.Flags().Lookup("verbose"))
	assert.NotNil(t, pushCmd.Flags().Lookup("message"))

	limit := historyCmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "10", limit.DefValue)
}
