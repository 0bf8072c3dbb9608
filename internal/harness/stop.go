package harness

import (
	"context"
	"sync/atomic"
)

// stopFlag is polled by the spin loops. A single atomic load per check keeps
// it out of the measurement, unlike a select on ctx.Done().
type stopFlag struct {
	done atomic.Bool
}

func (s *stopFlag) Done() bool {
	return s.done.Load()
}

func (s *stopFlag) Stop() {
	s.done.Store(true)
}

// watch sets the flag when ctx is cancelled. The returned func detaches it.
func (s *stopFlag) watch(ctx context.Context) func() bool {
	return context.AfterFunc(ctx, s.Stop)
}
