// Package domain contains the core types for content synchronization:
// configurations, workflow outcomes, repository snapshots and the error
// taxonomy shared by all layers.
package domain

// DefaultBranch is the branch synchronized when none is configured.
const DefaultBranch = "main"

// Default identity used for generated sync commits.
const (
	DefaultCommitAuthorName  = "ceres-sync"
	DefaultCommitAuthorEmail = "ceres-sync@localhost"
)

// SyncConfiguration identifies one sync relationship between a source
// repository and a local working copy. It is built once, has defaults merged
// in at construction, and is never mutated afterwards.
type SyncConfiguration struct {
	SourceRepositoryLocation string   `json:"sourceRepositoryLocation" mapstructure:"sourceRepositoryLocation"`
	LocalContentPath         string   `json:"localContentPath" mapstructure:"localContentPath"`
	Branch                   string   `json:"branch" mapstructure:"branch"`
	AutoCommitEnabled        bool     `json:"autoCommitEnabled" mapstructure:"autoCommitEnabled"`
	IncludePaths             []string `json:"includePaths,omitempty" mapstructure:"includePaths"`
	ExcludePaths             []string `json:"excludePaths" mapstructure:"excludePaths"`
	Verbose                  bool     `json:"verbose" mapstructure:"verbose"`
	CommitAuthorName         string   `json:"commitAuthorName" mapstructure:"commitAuthorName"`
	CommitAuthorEmail        string   `json:"commitAuthorEmail" mapstructure:"commitAuthorEmail"`
	NotificationsEnabled     bool     `json:"notificationsEnabled" mapstructure:"notificationsEnabled"`
}

// DefaultExcludePaths returns the paths excluded from synchronization when
// the configuration does not name its own.
func DefaultExcludePaths() []string {
	return []string{".git", "node_modules", ".DS_Store"}
}

// NewSyncConfiguration builds a configuration for the given source repository
// and local content path with all defaults merged in.
func NewSyncConfiguration(source, localPath string) (*SyncConfiguration, error) {
	cfg := &SyncConfiguration{
		SourceRepositoryLocation: source,
		LocalContentPath:         localPath,
		AutoCommitEnabled:        true,
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills in every optional field that is still zero-valued.
// AutoCommitEnabled is not touched here: a false value is a legitimate
// setting and only NewSyncConfiguration (or the config loader's defaults)
// may decide its initial value.
func (c *SyncConfiguration) ApplyDefaults() {
	if c.Branch == "" {
		c.Branch = DefaultBranch
	}
	if c.ExcludePaths == nil {
		c.ExcludePaths = DefaultExcludePaths()
	}
	if c.CommitAuthorName == "" {
		c.CommitAuthorName = DefaultCommitAuthorName
	}
	if c.CommitAuthorEmail == "" {
		c.CommitAuthorEmail = DefaultCommitAuthorEmail
	}
}

// Validate checks the required fields.
func (c *SyncConfiguration) Validate() error {
	if c.SourceRepositoryLocation == "" {
		return &ConfigurationError{Reason: "missing required field sourceRepositoryLocation"}
	}
	if c.LocalContentPath == "" {
		return &ConfigurationError{Reason: "missing required field localContentPath"}
	}
	return nil
}

// RemoteBranchRef returns the remote-tracking ref for the configured branch.
func (c *SyncConfiguration) RemoteBranchRef() string {
	return "origin/" + c.Branch
}

// Filter returns the path filter derived from the include/exclude lists.
func (c *SyncConfiguration) Filter() PathFilter {
	return PathFilter{Include: c.IncludePaths, Exclude: c.ExcludePaths}
}

// Author returns the signature used for generated commits.
func (c *SyncConfiguration) Author() Signature {
	return Signature{Name: c.CommitAuthorName, Email: c.CommitAuthorEmail}
}
