package config

import (
	"github.com/ordhook/ordhook/pkg/bitcoin"
	"github.com/ordhook/ordhook/pkg/indexer"
	"github.com/ordhook/ordhook/pkg/observer"
)

// DeriveIndexingConfig projects c into the inscription indexer's configuration.
func (c *Config) DeriveIndexingConfig() indexer.Config {
	return indexer.Config{
		Resources:              c.Resources,
		DBPath:                 c.ResolvedStoragePath(),
		FirstInscriptionHeight: bitcoin.FirstInscriptionHeight(c.Network.BitcoinNetwork),
		Logs:                   c.Logs,
	}
}

// DeriveEventObserverConfig projects c into the event observer's configuration.
// Observer display logs stay off whatever c.Logs says, and no chainhook
// config is attached; callers inject one with WithChainhookConfig.
func (c *Config) DeriveEventObserverConfig() observer.Config {
	return observer.Config{
		BitcoinRPCProxyEnabled: true,
		ChainhookConfig:        nil,
		IngestionPort:          observer.DefaultIngestionPort,
		BitcoindRPCUsername:    c.Network.BitcoindRPCUsername,
		BitcoindRPCPassword:    c.Network.BitcoindRPCPassword,
		BitcoindRPCURL:         c.Network.BitcoindRPCURL,
		BlockSignaling:         c.Network.BlockSignaling,
		DisplayLogs:            false,
		CachePath:              c.ResolvedStoragePath(),
		BitcoinNetwork:         c.Network.BitcoinNetwork,
		StacksNetwork:          c.Network.StacksNetwork,
	}
}
