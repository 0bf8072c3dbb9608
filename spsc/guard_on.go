//go:build spsc_guard

package spsc

import "sync/atomic"

// Guarded reports whether handles detect concurrent misuse.
const Guarded = true

// guard panics when two goroutines are inside the same handle at once.
type guard struct {
	active atomic.Uint32
}

func (g *guard) enter(op string) {
	if !g.active.CompareAndSwap(0, 1) {
		panic("spsc: concurrent " + op + " on a single handle - only one goroutine per side allowed")
	}
}

func (g *guard) exit() {
	g.active.Store(0)
}
