package config

import (
	"errors"
	"fmt"

	"github.com/ordhook/ordhook/pkg/bitcoin"
	"github.com/ordhook/ordhook/pkg/logging"
	"github.com/ordhook/ordhook/pkg/observer"
	"github.com/ordhook/ordhook/pkg/predicates"
	"github.com/ordhook/ordhook/pkg/resources"
	"github.com/ordhook/ordhook/pkg/snapshot"
)

const (
	ProfileDevnet  = "devnet"
	ProfileTestnet = "testnet"
	ProfileMainnet = "mainnet"
)

const (
	devnetRPCURL  = "http://0.0.0.0:18443"
	testnetRPCURL = "http://0.0.0.0:18332"
	mainnetRPCURL = "http://0.0.0.0:8332"

	// Placeholder credentials matching a local bitcoind started for development.
	defaultRPCUsername = "devnet"
	defaultRPCPassword = "devnet"
)

var ErrUnknownProfile = errors.New("unknown network profile")

// Profiles lists the names accepted by Profile.
func Profiles() []string {
	return []string{ProfileDevnet, ProfileTestnet, ProfileMainnet}
}

// Profile returns the default configuration of the named deployment environment.
// Like the profile constructors, it expects an absolute workingDir.
func Profile(name, workingDir string) (*Config, error) {
	switch name {
	case ProfileDevnet:
		return DevnetDefault(workingDir), nil
	case ProfileTestnet:
		return TestnetDefault(workingDir), nil
	case ProfileMainnet:
		return MainnetDefault(workingDir), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// DevnetDefault returns the configuration of a local regtest node. workingDir
// must be absolute and already resolved by the caller.
func DevnetDefault(workingDir string) *Config {
	return newProfile(workingDir, snapshot.Build(), bitcoin.Parameters{
		BitcoindRPCURL: devnetRPCURL,
		BitcoinNetwork: bitcoin.Regtest,
		StacksNetwork:  bitcoin.StacksDevnet,
	})
}

// TestnetDefault returns the configuration of a public testnet node.
func TestnetDefault(workingDir string) *Config {
	return newProfile(workingDir, snapshot.Build(), bitcoin.Parameters{
		BitcoindRPCURL: testnetRPCURL,
		BitcoinNetwork: bitcoin.Testnet,
		StacksNetwork:  bitcoin.StacksTestnet,
	})
}

// MainnetDefault returns the configuration of a public mainnet node. Mainnet
// bootstraps from the published archive instead of indexing from genesis.
func MainnetDefault(workingDir string) *Config {
	return newProfile(workingDir, snapshot.Download(snapshot.DefaultMainnetArchive), bitcoin.Parameters{
		BitcoindRPCURL: mainnetRPCURL,
		BitcoinNetwork: bitcoin.Mainnet,
		StacksNetwork:  bitcoin.StacksMainnet,
	})
}

func newProfile(workingDir string, strategy snapshot.Strategy, network bitcoin.Parameters) *Config {
	network.BitcoindRPCUsername = defaultRPCUsername
	network.BitcoindRPCPassword = defaultRPCPassword
	network.BlockSignaling = bitcoin.StacksSignaling(bitcoin.DefaultLocalhost(observer.DefaultIngestionPort))

	return &Config{
		Storage: StorageConfig{
			WorkingDir: workingDir,
		},
		HTTPAPI:   predicates.Off(),
		Resources: resources.DefaultConfig(),
		Network:   network,
		Snapshot:  strategy,
		Logs:      logging.DefaultConfig(),
	}
}
