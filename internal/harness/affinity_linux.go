//go:build linux

package harness

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// pin binds the calling OS thread to cpu. The caller must hold
// runtime.LockOSThread.
func pin(cpu int) error {
	if cpu == NoPin {
		return nil
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("harness: pin to cpu %d: %w", cpu, err)
	}
	return nil
}
