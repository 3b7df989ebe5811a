// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files (affinity_linux.go, affinity_stub.go) guarded by
// build tags. Used by the benchmarks to keep the producer and consumer of
// a ring on fixed cores.

package affinity

// Pin binds the calling OS thread to the given logical CPU on supported
// platforms. Call runtime.LockOSThread first so the goroutine stays on
// the pinned thread. On unsupported platforms Pin returns an error
// wrapping api.ErrNotSupported.
func Pin(cpuID int) error {
	return pinPlatform(cpuID)
}
