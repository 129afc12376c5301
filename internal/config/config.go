// Package config persists the sync configuration as a JSON file next to the
// content it manages.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ceresdesign/ceres-sync/internal/domain"
	"github.com/spf13/viper"
)

// DefaultFileName is the configuration file written by init and read by
// every other command unless --config overrides it.
const DefaultFileName = ".ceres-sync.json"

// historyFileName is the sync-history database living next to the
// configuration file.
const historyFileName = ".ceres-sync.db"

// Resolve returns path, or the default file name when path is empty.
func Resolve(path string) string {
	if path == "" {
		return DefaultFileName
	}
	return path
}

// Load reads and validates the persisted configuration, merging in the
// defaults for every absent optional field.
func Load(path string) (*domain.SyncConfiguration, error) {
	path = Resolve(path)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.ConfigurationError{
				Reason: fmt.Sprintf("no sync configuration at %s; run 'ceres-sync init' first", path),
			}
		}
		return nil, &domain.ConfigurationError{Reason: "cannot read configuration", Err: err}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, &domain.ConfigurationError{Reason: "cannot read configuration", Err: err}
	}

	var cfg domain.SyncConfiguration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &domain.ConfigurationError{Reason: "cannot parse configuration", Err: err}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration as JSON with a fixed two-space indent.
func Save(path string, cfg *domain.SyncConfiguration) error {
	path = Resolve(path)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return &domain.ConfigurationError{Reason: "cannot encode configuration", Err: err}
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &domain.ConfigurationError{Reason: "cannot write configuration", Err: err}
	}
	return nil
}

// HistoryPath returns the sync-history database path for a configuration
// file path.
func HistoryPath(configPath string) string {
	return filepath.Join(filepath.Dir(Resolve(configPath)), historyFileName)
}

// setDefaults merges the optional-field defaults into the loader.
func setDefaults(v *viper.Viper) {
	v.SetDefault("branch", domain.DefaultBranch)
	v.SetDefault("autoCommitEnabled", true)
	v.SetDefault("excludePaths", domain.DefaultExcludePaths())
	v.SetDefault("verbose", false)
	v.SetDefault("commitAuthorName", domain.DefaultCommitAuthorName)
	v.SetDefault("commitAuthorEmail", domain.DefaultCommitAuthorEmail)
	v.SetDefault("notificationsEnabled", false)
}
