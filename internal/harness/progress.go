package harness

import (
	"time"
	_ "unsafe" // Required for go:linkname
)

// nanotime returns the runtime's monotonic clock without building a
// time.Time.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// progress fires at most once per interval. It is polled by a single
// goroutine and checks the clock only every checkEvery calls.
type progress struct {
	interval int64
	last     int64
	count    uint32
}

const checkEvery = 1024

func newProgress(interval time.Duration) *progress {
	return &progress{
		interval: int64(interval),
		last:     nanotime(),
	}
}

// Tick returns true if the interval has elapsed since the last tick.
// A zero interval never ticks.
func (p *progress) Tick() bool {
	if p.interval <= 0 {
		return false
	}
	p.count++
	if p.count%checkEvery != 0 {
		return false
	}
	now := nanotime()
	if now-p.last >= p.interval {
		p.last = now
		return true
	}
	return false
}
