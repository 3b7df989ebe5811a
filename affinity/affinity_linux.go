//go:build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux implementation of thread CPU pinning via sched_setaffinity.

package affinity

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/ringbuf/api"
)

// pinPlatform sets the calling thread's affinity mask to the single CPU.
func pinPlatform(cpuID int) error {
	if cpuID < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "affinity: cpu id must be non-negative").
			WithContext("cpu_id", cpuID)
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return api.NewError(api.ErrCodeInternal, "affinity: sched_setaffinity failed").
			WithContext("cpu_id", cpuID).
			WithContext("errno", err.Error())
	}
	return nil
}
