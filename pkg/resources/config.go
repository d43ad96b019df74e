package resources

import (
	"time"
)

const (
	DefaultUlimit                 uint   = 2048
	DefaultMemoryAvailable        uint   = 8
	DefaultBitcoindRPCThreads     uint   = 4
	DefaultBitcoindRPCTimeout     uint32 = 15
	DefaultExpectedObserversCount uint   = 1
)

// Config holds the hardware and limit inputs the node sizes itself from.
type Config struct {
	// Ulimit is the open file descriptor budget.
	Ulimit uint `yaml:"ulimit"`
	// CPUCoreAvailable is the number of cores the node may use.
	CPUCoreAvailable uint `yaml:"cpu_core_available"`
	// MemoryAvailable is expressed in GB.
	MemoryAvailable uint `yaml:"memory_available"`
	// BitcoindRPCThreads is the number of concurrent bitcoind RPC workers.
	BitcoindRPCThreads uint `yaml:"bitcoind_rpc_threads"`
	// BitcoindRPCTimeout is expressed in seconds.
	BitcoindRPCTimeout uint32 `yaml:"bitcoind_rpc_timeout"`
	// ExpectedObserversCount is the number of event observers fed by the node.
	ExpectedObserversCount uint `yaml:"expected_observers_count"`
}

// DefaultConfig returns a Config with sensible defaults and the host core count.
func DefaultConfig() Config {
	return Config{
		Ulimit:                 DefaultUlimit,
		CPUCoreAvailable:       HostCPUCores(),
		MemoryAvailable:        DefaultMemoryAvailable,
		BitcoindRPCThreads:     DefaultBitcoindRPCThreads,
		BitcoindRPCTimeout:     DefaultBitcoindRPCTimeout,
		ExpectedObserversCount: DefaultExpectedObserversCount,
	}
}

// OptimalThreadPoolCapacity returns the worker pool size for the configured core count.
func (c Config) OptimalThreadPoolCapacity() uint {
	return OptimalThreadPoolCapacity(c.CPUCoreAvailable)
}

// BitcoindRPCTimeoutDuration returns the RPC timeout as a time.Duration.
func (c Config) BitcoindRPCTimeoutDuration() time.Duration {
	return time.Duration(c.BitcoindRPCTimeout) * time.Second
}
