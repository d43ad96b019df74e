package observer

import (
	"github.com/ordhook/ordhook/pkg/bitcoin"
)

// DefaultIngestionPort is where the observer receives block notifications.
const DefaultIngestionPort uint16 = 20455

// ChainhookConfig holds the predicates registered with the observer.
type ChainhookConfig struct {
	// Predicates are serialized predicate specifications.
	Predicates []string `yaml:"predicates"`
}

// Config is the view of the node configuration consumed by the event observer.
type Config struct {
	BitcoinRPCProxyEnabled bool             `yaml:"bitcoin_rpc_proxy_enabled"`
	ChainhookConfig        *ChainhookConfig `yaml:"chainhook_config,omitempty"`
	IngestionPort          uint16           `yaml:"ingestion_port"`

	BitcoindRPCUsername string                 `yaml:"bitcoind_rpc_username"`
	BitcoindRPCPassword string                 `yaml:"bitcoind_rpc_password"`
	BitcoindRPCURL      string                 `yaml:"bitcoind_rpc_url"`
	BlockSignaling      bitcoin.BlockSignaling `yaml:"bitcoin_block_signaling"`

	DisplayLogs    bool                  `yaml:"display_logs"`
	CachePath      string                `yaml:"cache_path"`
	BitcoinNetwork bitcoin.Network       `yaml:"bitcoin_network"`
	StacksNetwork  bitcoin.StacksNetwork `yaml:"stacks_network"`
}

// WithChainhookConfig returns a copy of c with hooks attached.
func (c Config) WithChainhookConfig(hooks *ChainhookConfig) Config {
	c.ChainhookConfig = hooks

	return c
}
