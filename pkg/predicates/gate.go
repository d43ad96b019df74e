package predicates

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const offValue = "off"

// Gate toggles the predicates API. Settings exist only while the gate is on.
// The zero value is Off.
type Gate struct {
	enabled bool
	config  Config
}

// Off returns a disabled gate.
func Off() Gate {
	return Gate{}
}

// On returns an enabled gate carrying cfg.
func On(cfg Config) Gate {
	return Gate{enabled: true, config: cfg}
}

// IsHTTPAPIEnabled reports whether the gate is on.
func (g Gate) IsHTTPAPIEnabled() bool {
	return g.enabled
}

// ExpectedAPIConfig returns a copy of the API settings. Callers must check
// IsHTTPAPIEnabled first: it panics when the gate is off.
func (g Gate) ExpectedAPIConfig() Config {
	if !g.enabled {
		panic("predicates: api config requested while the http api is off")
	}

	return g.config
}

// Validate checks the enabled settings for errors.
func (g Gate) Validate() error {
	if !g.enabled {
		return nil
	}

	return g.config.Validate()
}

func (g Gate) String() string {
	if !g.enabled {
		return offValue
	}

	return fmt.Sprintf("on(port=%d)", g.config.HTTPPort)
}

// MarshalYAML renders Off as a scalar and On as its settings mapping.
func (g Gate) MarshalYAML() (interface{}, error) {
	if !g.enabled {
		return offValue, nil
	}

	return g.config, nil
}

// UnmarshalYAML accepts either "off" or a settings mapping.
func (g *Gate) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value != offValue {
			return fmt.Errorf("unknown predicates api value %q", value.Value)
		}

		*g = Off()

		return nil
	case yaml.MappingNode:
		cfg := DefaultConfig()
		if err := value.Decode(&cfg); err != nil {
			return fmt.Errorf("failed to decode predicates api config: %w", err)
		}

		*g = On(cfg)

		return nil
	default:
		return fmt.Errorf("unexpected predicates api yaml node at line %d", value.Line)
	}
}
