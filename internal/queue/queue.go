// Package queue adapts SPSC queue implementations to a common non-blocking
// contract so they can be compared by the same harness.
//
// Implementations:
//   - Donut (array): spsc.Buffer over ArrayStorage
//   - Donut (slab): spsc.Buffer over SlabStorage
//   - ChannelQueue: buffered channel with select/default
//   - ShardedRing: github.com/randomizedcoder/go-lock-free-ring with one shard
//
// # Safety (IMPORTANT)
//
// Every Queue here is used as Single-Producer Single-Consumer:
//   - Exactly ONE goroutine calls Push()
//   - Exactly ONE goroutine calls Pop()
//   - These may be the same goroutine or different goroutines
package queue

// Queue is a single-producer single-consumer queue.
//
// Implementations are non-blocking: Push returns false if full,
// Pop returns false if empty.
type Queue[T any] interface {
	// Push adds an item to the queue.
	// Returns false if the queue is full.
	Push(T) bool

	// Pop removes and returns an item from the queue.
	// Returns false if the queue is empty.
	Pop() (T, bool)
}

// Sized is implemented by queues that can report occupancy.
type Sized interface {
	Len() int
	Cap() int
}
