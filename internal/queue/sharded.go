package queue

import (
	"fmt"

	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// ShardedRing wraps go-lock-free-ring's MPSC sharded ring with a single
// shard, the closest it gets to SPSC.
//
// Values cross the ring as interface values, so Push boxes anything that
// does not fit in a pointer word.
type ShardedRing[T any] struct {
	r    *ring.ShardedRing
	size int
}

// NewShardedRing creates a single-shard ring of at least size slots.
func NewShardedRing[T any](size int) (*ShardedRing[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("queue: sharded ring size must be positive, got %d", size)
	}
	r, err := ring.NewShardedRing(uint64(size), 1)
	if err != nil {
		return nil, fmt.Errorf("queue: sharded ring: %w", err)
	}
	return &ShardedRing[T]{r: r, size: size}, nil
}

// Push adds an item to the queue as producer 0.
// Returns false if the shard is full.
func (q *ShardedRing[T]) Push(v T) bool {
	return q.r.Write(0, v)
}

// Pop removes and returns an item from the queue.
// Returns false if the ring is empty.
func (q *ShardedRing[T]) Pop() (T, bool) {
	v, ok := q.r.TryRead()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}
