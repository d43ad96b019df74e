package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ordhook/ordhook/pkg/config"
	"github.com/ordhook/ordhook/pkg/logging"
)

// defaultCacheDir is appended to the process working directory when no
// --working-dir is given.
const defaultCacheDir = "ordhook"

var (
	cfgFile     string
	logLevel    string
	networkName string
	workingDir  string
	rpcUsername string
	rpcPassword string
)

var rootCmd = &cobra.Command{
	Use:   "ordhook",
	Short: "Bitcoin ordinals indexer",
	Long: `Ordhook indexes ordinals inscriptions on bitcoin and serves predicates
over an event observer. These commands resolve and inspect its configuration.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "yaml file overlaid on the network profile")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&networkName, "network", config.ProfileMainnet, "network profile (devnet, testnet, mainnet)")
	rootCmd.PersistentFlags().StringVar(&workingDir, "working-dir", "", "storage directory (default ./ordhook)")
	rootCmd.PersistentFlags().StringVar(&rpcUsername, "rpc-username", "", "bitcoind rpc username")
	rootCmd.PersistentFlags().StringVar(&rpcPassword, "rpc-password", "", "bitcoind rpc password")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func newLogger() (*logrus.Logger, error) {
	return logging.New(logLevel)
}

// DefaultCachePath returns the ordhook directory under the process working directory.
func DefaultCachePath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to get current dir: %w", err)
	}

	return filepath.Join(cwd, defaultCacheDir), nil
}

func loadConfig(cmd *cobra.Command, log logrus.FieldLogger) (*config.Config, error) {
	dir := workingDir
	if dir == "" {
		defaultDir, err := DefaultCachePath()
		if err != nil {
			return nil, err
		}

		dir = defaultDir
	}

	cfg, err := config.Profile(networkName, dir)
	if err != nil {
		return nil, err
	}

	if cfgFile != "" {
		data, err := os.ReadFile(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}

		log.WithField("path", cfgFile).Debug("applied config file")
	}

	if cmd.Flags().Changed("working-dir") {
		cfg.Storage.WorkingDir = workingDir
	}

	if !filepath.IsAbs(cfg.Storage.WorkingDir) {
		abs, err := filepath.Abs(cfg.Storage.WorkingDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working dir: %w", err)
		}

		cfg.Storage.WorkingDir = abs
	}

	if cmd.Flags().Changed("rpc-username") || cmd.Flags().Changed("rpc-password") {
		cfg = cfg.WithRPCCredentials(rpcUsername, rpcPassword)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
