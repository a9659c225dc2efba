//go:build linux

package ringpool

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToCPU locks the calling goroutine to its current OS thread and
// restricts that thread to run on cpu. Workers call it once, from inside
// their own loop, when Config.PinWorkers is set.
func pinToCPU(cpu int) error {
	runtime.LockOSThread()
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(cpu)
	return unix.SchedSetaffinity(0, &mask)
}
