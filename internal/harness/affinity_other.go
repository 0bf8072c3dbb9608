//go:build !linux

package harness

// pin is a no-op where thread affinity is not supported; the goroutine is
// still locked to its OS thread.
func pin(int) error {
	return nil
}
