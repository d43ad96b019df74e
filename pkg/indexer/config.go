package indexer

import (
	"errors"
	"fmt"

	"github.com/ordhook/ordhook/pkg/logging"
	"github.com/ordhook/ordhook/pkg/resources"
)

var ErrNoDBPath = errors.New("indexer db path is empty")

// Config is the view of the node configuration consumed by the inscription indexer.
type Config struct {
	Resources resources.Config `yaml:"resources"`
	// DBPath is the directory holding the indexer databases.
	DBPath string `yaml:"db_path"`
	// FirstInscriptionHeight is the first block scanned for inscriptions.
	FirstInscriptionHeight uint64         `yaml:"first_inscription_height"`
	Logs                   logging.Config `yaml:"logs"`
}

// ThreadPoolCapacity returns the number of block processing workers.
func (c Config) ThreadPoolCapacity() uint {
	return c.Resources.OptimalThreadPoolCapacity()
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return ErrNoDBPath
	}

	if c.FirstInscriptionHeight == 0 {
		return fmt.Errorf("first inscription height must be positive")
	}

	return nil
}
