package bitcoin

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownNetwork       = errors.New("unknown bitcoin network")
	ErrUnknownStacksNetwork = errors.New("unknown stacks network")
)

// Network is the bitcoin chain variant the node indexes.
type Network int

const (
	Mainnet Network = iota
	Testnet
	Regtest
	Signet
)

// Networks lists every known bitcoin network.
func Networks() []Network {
	return []Network{Mainnet, Testnet, Regtest, Signet}
}

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Regtest:
		return "regtest"
	case Signet:
		return "signet"
	}

	return fmt.Sprintf("network(%d)", int(n))
}

// ParseNetwork resolves a network from its name.
func ParseNetwork(name string) (Network, error) {
	for _, n := range Networks() {
		if n.String() == name {
			return n, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}

// MarshalText implements encoding.TextMarshaler.
func (n Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := ParseNetwork(string(text))
	if err != nil {
		return err
	}

	*n = parsed

	return nil
}

// FirstInscriptionHeight returns the first block at which inscriptions can
// appear on the given network. Every Network must have a case here; an
// unlisted value is a programming error.
func FirstInscriptionHeight(n Network) uint64 {
	switch n {
	case Mainnet:
		return 767430
	case Regtest:
		return 1
	case Testnet:
		return 2413343
	case Signet:
		return 112402
	}

	panic(fmt.Sprintf("bitcoin: no inscription activation height for %s", n))
}

// StacksNetwork is the companion network driving block signaling.
type StacksNetwork int

const (
	StacksSimnet StacksNetwork = iota
	StacksDevnet
	StacksTestnet
	StacksMainnet
)

// StacksNetworks lists every known stacks network.
func StacksNetworks() []StacksNetwork {
	return []StacksNetwork{StacksSimnet, StacksDevnet, StacksTestnet, StacksMainnet}
}

func (n StacksNetwork) String() string {
	switch n {
	case StacksSimnet:
		return "simnet"
	case StacksDevnet:
		return "devnet"
	case StacksTestnet:
		return "testnet"
	case StacksMainnet:
		return "mainnet"
	}

	return fmt.Sprintf("stacks_network(%d)", int(n))
}

// ParseStacksNetwork resolves a stacks network from its name.
func ParseStacksNetwork(name string) (StacksNetwork, error) {
	for _, n := range StacksNetworks() {
		if n.String() == name {
			return n, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStacksNetwork, name)
}

// MarshalText implements encoding.TextMarshaler.
func (n StacksNetwork) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *StacksNetwork) UnmarshalText(text []byte) error {
	parsed, err := ParseStacksNetwork(string(text))
	if err != nil {
		return err
	}

	*n = parsed

	return nil
}
