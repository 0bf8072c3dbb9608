package spsc

import "github.com/randomizedcoder/donut/internal/slab"

// SlabStorage keeps values in a pool and maps each ring position to a pool
// handle through a fixed index table.
//
// The handle for a position is inserted on the first lap and refilled in
// place afterwards, so after one full cycle no further allocation happens.
// Taken entries stay reserved in the pool rather than being removed, and an
// index entry is never reset to unused once written.
type SlabStorage[T any] struct {
	pool  *slab.Slab[T]
	index []slab.Key
	ring  ring
}

// NewSlabStorage returns a SlabStorage with capacity positions, all unused.
func NewSlabStorage[T any](capacity int) *SlabStorage[T] {
	capacity = max(capacity, 0)
	index := make([]slab.Key, capacity)
	for i := range index {
		index[i] = slab.None
	}
	return &SlabStorage[T]{
		pool:  slab.New[T](capacity),
		index: index,
		ring:  newRing(capacity),
	}
}

// Cap returns the number of positions.
func (s *SlabStorage[T]) Cap() int {
	return len(s.index)
}

// Write stores item at pos, inserting a pool entry on first use of the
// position and reusing it in place on later laps.
func (s *SlabStorage[T]) Write(pos uint64, item T) {
	i := s.ring.index(pos)
	if k := s.index[i]; k != slab.None {
		s.pool.Set(k, item)
		return
	}

	k, err := s.pool.Insert(item)
	if err != nil {
		// One entry per position: the pool cannot run out.
		panic("spsc: slab pool exhausted: " + err.Error())
	}
	s.index[i] = k
}

// Take moves the value at pos out of the pool. ok is false if the position
// was never written or has already been taken.
func (s *SlabStorage[T]) Take(pos uint64) (T, bool) {
	k := s.index[s.ring.index(pos)]
	if k == slab.None {
		var zero T
		return zero, false
	}
	return s.pool.Take(k)
}

// Live returns the number of values currently held by the pool.
func (s *SlabStorage[T]) Live() int {
	return s.pool.Len()
}
