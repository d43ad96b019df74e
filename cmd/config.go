package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ordhook/ordhook/pkg/config"
	"github.com/ordhook/ordhook/pkg/indexer"
	"github.com/ordhook/ordhook/pkg/observer"
	"github.com/ordhook/ordhook/pkg/predicates"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate and inspect node configuration",
}

var configNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Print the resolved configuration as yaml",
	RunE:  runConfigNew,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration derived for each subsystem",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configNewCmd)
	configCmd.AddCommand(configShowCmd)
}

// snapshotView lists the remote artifacts of a download strategy.
type snapshotView struct {
	ArchiveURL string `yaml:"archive_url"`
	SHA256URL  string `yaml:"sha256_url"`
}

// derivedView is everything the node hands to its subsystems at startup.
type derivedView struct {
	StoragePath   string             `yaml:"storage_path"`
	ThreadPool    uint               `yaml:"thread_pool_capacity"`
	Indexer       indexer.Config     `yaml:"indexer"`
	Observer      observer.Config    `yaml:"observer"`
	Snapshot      *snapshotView      `yaml:"snapshot,omitempty"`
	PredicatesAPI *predicates.Config `yaml:"predicates_api,omitempty"`
}

func runConfigNew(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, log)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)

	return err
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, log)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	view := derive(cfg)

	if err := view.Indexer.Validate(); err != nil {
		return fmt.Errorf("invalid indexer config: %w", err)
	}

	cfg.Logs.Ordinals(log).WithFields(logrus.Fields{
		"db_path":                  view.Indexer.DBPath,
		"first_inscription_height": view.Indexer.FirstInscriptionHeight,
		"thread_pool_capacity":     view.ThreadPool,
	}).Info("derived indexer config")

	cfg.Logs.Chainhook(log).WithFields(logrus.Fields{
		"bitcoind_rpc_url": view.Observer.BitcoindRPCURL,
		"ingestion_port":   view.Observer.IngestionPort,
		"signaling":        view.Observer.BlockSignaling.Kind().String(),
	}).Info("derived event observer config")

	log.WithFields(logrus.Fields{
		"network":  cfg.Network.BitcoinNetwork.String(),
		"snapshot": cfg.Snapshot.String(),
		"http_api": cfg.HTTPAPI.String(),
	}).Info("configuration resolved")

	out, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to encode derived config: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)

	return err
}

func derive(cfg *config.Config) derivedView {
	indexerCfg := cfg.DeriveIndexingConfig()

	view := derivedView{
		StoragePath: cfg.ResolvedStoragePath(),
		ThreadPool:  indexerCfg.ThreadPoolCapacity(),
		Indexer:     indexerCfg,
		Observer:    cfg.DeriveEventObserverConfig(),
	}

	if cfg.ShouldBootstrapThroughDownload() {
		view.Snapshot = &snapshotView{
			ArchiveURL: cfg.ExpectedRemoteOrdinalsSQLiteURL(),
			SHA256URL:  cfg.ExpectedRemoteOrdinalsSQLiteSHA256(),
		}
	}

	if cfg.IsHTTPAPIEnabled() {
		api := cfg.ExpectedAPIConfig()
		view.PredicatesAPI = &api
	}

	return view
}
