package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ordhook/ordhook/pkg/bitcoin"
	"github.com/ordhook/ordhook/pkg/logging"
	"github.com/ordhook/ordhook/pkg/predicates"
	"github.com/ordhook/ordhook/pkg/resources"
	"github.com/ordhook/ordhook/pkg/snapshot"
)

var (
	ErrNoWorkingDir       = errors.New("storage working dir is empty")
	ErrRelativeWorkingDir = errors.New("storage working dir must be absolute")
)

// Config holds the top-level configuration of an ordhook node. It is built
// once per process and only read afterwards.
type Config struct {
	Storage   StorageConfig      `yaml:"storage"`
	HTTPAPI   predicates.Gate    `yaml:"http_api"`
	Resources resources.Config   `yaml:"resources"`
	Network   bitcoin.Parameters `yaml:"network"`
	Snapshot  snapshot.Strategy  `yaml:"snapshot"`
	Logs      logging.Config     `yaml:"logs"`
}

// StorageConfig locates persisted node state.
type StorageConfig struct {
	// WorkingDir is the root directory of every database and cache.
	WorkingDir string `yaml:"working_dir"`
}

// Clone returns an independent copy of c.
func (c *Config) Clone() *Config {
	clone := *c

	return &clone
}

// WithRPCCredentials returns a copy of c using the given bitcoind credentials.
func (c *Config) WithRPCCredentials(username, password string) *Config {
	clone := c.Clone()
	clone.Network.BitcoindRPCUsername = username
	clone.Network.BitcoindRPCPassword = password

	return clone
}

// IsHTTPAPIEnabled reports whether the predicates API should be served.
func (c *Config) IsHTTPAPIEnabled() bool {
	return c.HTTPAPI.IsHTTPAPIEnabled()
}

// ExpectedAPIConfig returns a copy of the predicates API settings. It panics
// when the API is disabled.
func (c *Config) ExpectedAPIConfig() predicates.Config {
	return c.HTTPAPI.ExpectedAPIConfig()
}

// ShouldBootstrapThroughDownload reports whether initial state comes from a remote archive.
func (c *Config) ShouldBootstrapThroughDownload() bool {
	return c.Snapshot.ShouldBootstrapThroughDownload()
}

// ExpectedRemoteOrdinalsSQLiteURL returns the archive to download. It panics
// when the snapshot strategy is Build.
func (c *Config) ExpectedRemoteOrdinalsSQLiteURL() string {
	return c.Snapshot.RemoteArchiveURL()
}

// ExpectedRemoteOrdinalsSQLiteSHA256 returns the checksum of the archive to
// download. It panics when the snapshot strategy is Build.
func (c *Config) ExpectedRemoteOrdinalsSQLiteSHA256() string {
	return c.Snapshot.RemoteSHA256URL()
}

// ResolvedStoragePath returns the normalized working directory. Every
// subsystem that persists state must use this path. It is only absolute when
// WorkingDir is; Validate rejects relative working dirs.
func (c *Config) ResolvedStoragePath() string {
	return filepath.Clean(c.Storage.WorkingDir)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Storage.WorkingDir == "" {
		return fmt.Errorf("storage config: %w", ErrNoWorkingDir)
	}

	if !filepath.IsAbs(c.Storage.WorkingDir) {
		return fmt.Errorf("storage config: %w: %s", ErrRelativeWorkingDir, c.Storage.WorkingDir)
	}

	if err := c.HTTPAPI.Validate(); err != nil {
		return fmt.Errorf("http api config: %w", err)
	}

	if err := c.Network.Validate(); err != nil {
		return fmt.Errorf("network config: %w", err)
	}

	if err := c.Snapshot.Validate(); err != nil {
		return fmt.Errorf("snapshot config: %w", err)
	}

	return nil
}
