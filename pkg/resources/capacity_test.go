package resources

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptimalThreadPoolCapacity(t *testing.T) {
	tests := []struct {
		cores    uint
		expected uint
	}{
		{cores: 0, expected: 1},
		{cores: 1, expected: 1},
		{cores: 2, expected: 1},
		{cores: 3, expected: 1},
		{cores: 4, expected: 2},
		{cores: 100, expected: 98},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, OptimalThreadPoolCapacity(tt.cores), "cores=%d", tt.cores)

		cfg := Config{CPUCoreAvailable: tt.cores}
		assert.Equal(t, tt.expected, cfg.OptimalThreadPoolCapacity(), "cores=%d", tt.cores)
	}
}

func TestHostCPUCores(t *testing.T) {
	assert.GreaterOrEqual(t, HostCPUCores(), uint(1))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, uint(2048), cfg.Ulimit)
	assert.Equal(t, uint(8), cfg.MemoryAvailable)
	assert.Equal(t, uint(4), cfg.BitcoindRPCThreads)
	assert.Equal(t, uint32(15), cfg.BitcoindRPCTimeout)
	assert.Equal(t, uint(1), cfg.ExpectedObserversCount)
	assert.Equal(t, HostCPUCores(), cfg.CPUCoreAvailable)
	assert.Equal(t, 15*time.Second, cfg.BitcoindRPCTimeoutDuration())
}
