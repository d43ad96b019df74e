package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Config toggles verbosity of the two internal subsystems.
type Config struct {
	// OrdinalsInternals enables logs emitted by the inscription indexer.
	OrdinalsInternals bool `yaml:"ordinals_internals"`
	// ChainhookInternals enables logs emitted by the chain observer.
	ChainhookInternals bool `yaml:"chainhook_internals"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		OrdinalsInternals:  true,
		ChainhookInternals: false,
	}
}

// New creates a logger at the given level.
func New(level string) (*logrus.Logger, error) {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log.SetLevel(parsed)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return log, nil
}

// Ordinals returns the logger for the inscription indexer.
func (c Config) Ordinals(log *logrus.Logger) logrus.FieldLogger {
	return subsystem(log, "ordinals", c.OrdinalsInternals)
}

// Chainhook returns the logger for the chain observer.
func (c Config) Chainhook(log *logrus.Logger) logrus.FieldLogger {
	return subsystem(log, "chainhook", c.ChainhookInternals)
}

func subsystem(log *logrus.Logger, name string, enabled bool) logrus.FieldLogger {
	if enabled {
		return log.WithField("subsystem", name)
	}

	silent := logrus.New()
	silent.SetOutput(io.Discard)
	silent.SetLevel(logrus.PanicLevel)

	return silent.WithField("subsystem", name)
}
