// Package spsc provides a fixed-capacity, lock-free, single-producer
// single-consumer queue.
//
// A Buffer is created once with a Storage strategy and split into exactly
// one Producer and one Consumer:
//
//	prod, cons, err := spsc.Bounded[uint64](256)
//	if err != nil {
//		return err
//	}
//
//	go func() {
//		for i := uint64(0); ; i++ {
//			for {
//				if _, ok := prod.Push(i); ok {
//					break
//				}
//			}
//		}
//	}()
//
//	for {
//		if v, ok := cons.Pop(); ok {
//			process(v)
//		}
//	}
//
// # Cursor protocol
//
// The Buffer holds two monotonically increasing counters. The write cursor
// counts every element ever accepted and is stored only by the Producer; the
// read cursor counts every element ever removed and is stored only by the
// Consumer. The Producer fills slot write%N and then publishes write+1; the
// Consumer observes the new write cursor, empties slot read%N and then
// publishes read+1. Each publish is an atomic store observed by the other
// side with an atomic load, so slot contents are always visible before the
// cursor that announces them. At every instant 0 <= write-read <= N.
//
// # Storage
//
// ArrayStorage is a plain slice of optional cells and suits small values.
// SlabStorage keeps values in a pool addressed through a per-position
// handle table; the handle for a position is allocated on first use and
// reused on every later lap.
//
// # Safety (IMPORTANT)
//
// Push and Pop never block: a full queue rejects the item and hands it back,
// an empty queue reports false. Callers own any retry or backoff policy.
//
// Exactly ONE goroutine may use the Producer and exactly ONE goroutine may
// use the Consumer. Build with -tags spsc_guard to make concurrent use of a
// single handle panic instead of corrupting the queue.
package spsc
