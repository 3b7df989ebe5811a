//go:build !linux

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub for platforms without thread affinity support.

package affinity

import "github.com/momentics/ringbuf/api"

// pinPlatform reports affinity as unsupported on this platform.
func pinPlatform(cpuID int) error {
	return api.NewError(api.ErrCodeNotSupported, "affinity: pinning not supported on this platform").
		WithContext("cpu_id", cpuID)
}
