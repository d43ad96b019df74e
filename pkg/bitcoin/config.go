package bitcoin

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parameters holds chain connectivity and chain selection settings.
type Parameters struct {
	// BitcoindRPCURL is the bitcoind JSON-RPC endpoint.
	BitcoindRPCURL      string `yaml:"bitcoind_rpc_url" validate:"required,url"`
	BitcoindRPCUsername string `yaml:"bitcoind_rpc_username"`
	BitcoindRPCPassword string `yaml:"bitcoind_rpc_password"`
	// BlockSignaling selects how new blocks are announced.
	BlockSignaling BlockSignaling `yaml:"bitcoin_block_signaling" validate:"-"`
	BitcoinNetwork Network        `yaml:"bitcoin_network"`
	StacksNetwork  StacksNetwork  `yaml:"stacks_network"`
}

// Validate checks the parameters for errors.
func (p Parameters) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid network parameters: %w", err)
	}

	if err := p.BlockSignaling.Validate(); err != nil {
		return fmt.Errorf("block signaling: %w", err)
	}

	if _, err := ParseNetwork(p.BitcoinNetwork.String()); err != nil {
		return err
	}

	if _, err := ParseStacksNetwork(p.StacksNetwork.String()); err != nil {
		return err
	}

	return nil
}
