package predicates

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultHTTPPort is the control port the predicates API listens on.
const DefaultHTTPPort uint16 = 20456

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds the settings of the HTTP predicates API.
type Config struct {
	// HTTPPort is the port the API listens on.
	HTTPPort uint16 `yaml:"http_port" validate:"required"`
	// DisplayLogs enables request logging.
	DisplayLogs bool `yaml:"display_logs"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		HTTPPort:    DefaultHTTPPort,
		DisplayLogs: false,
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid predicates api config: %w", err)
	}

	return nil
}
