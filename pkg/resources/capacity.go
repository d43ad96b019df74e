package resources

import (
	"runtime"

	"github.com/tklauser/numcpus"
)

// reservedCores are kept out of a pool: one feeds it, one reduces its results.
const reservedCores = 2

// OptimalThreadPoolCapacity turns an available core count into a pool size.
// It never returns 0, even when fewer than reservedCores are available.
func OptimalThreadPoolCapacity(cpuCoreAvailable uint) uint {
	if cpuCoreAvailable <= reservedCores {
		return 1
	}

	return cpuCoreAvailable - reservedCores
}

// HostCPUCores returns the number of online cores on this machine.
func HostCPUCores() uint {
	online, err := numcpus.GetOnline()
	if err != nil || online < 1 {
		online = runtime.NumCPU()
	}

	if online < 1 {
		return 1
	}

	return uint(online)
}
