package spsc

import (
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// ErrInvalidCapacity is returned when a buffer is built with fewer than one slot.
var ErrInvalidCapacity = errors.New("spsc: capacity must be positive")

// Buffer is the state shared by a Producer and a Consumer: the storage and
// the two cursors.
//
// A Buffer exposes only read-only observers. Mutation happens through the
// handles returned by Split.
type Buffer[T any] struct {
	_ cpu.CacheLinePad

	// write counts elements ever accepted. Stored only by the Producer.
	write atomic.Uint64

	_ cpu.CacheLinePad

	// read counts elements ever removed. Stored only by the Consumer.
	read atomic.Uint64

	_ cpu.CacheLinePad

	producerClosed atomic.Bool
	consumerClosed atomic.Bool
	split          atomic.Bool

	storage  Storage[T]
	capacity uint64
}

// New returns a Buffer backed by storage.
func New[T any](storage Storage[T]) (*Buffer[T], error) {
	if storage == nil {
		return nil, fmt.Errorf("%w: nil storage", ErrInvalidCapacity)
	}
	n := storage.Cap()
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, n)
	}
	return &Buffer[T]{
		storage:  storage,
		capacity: uint64(n),
	}, nil
}

// NewArray returns a Buffer backed by an ArrayStorage of capacity slots.
func NewArray[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return New[T](NewArrayStorage[T](capacity))
}

// NewSlab returns a Buffer backed by a SlabStorage of capacity slots.
func NewSlab[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return New[T](NewSlabStorage[T](capacity))
}

// Bounded creates an array-backed Buffer and splits it.
func Bounded[T any](capacity int) (*Producer[T], *Consumer[T], error) {
	b, err := NewArray[T](capacity)
	if err != nil {
		return nil, nil, err
	}
	p, c := b.Split()
	return p, c, nil
}

// BoundedSlab creates a slab-backed Buffer and splits it.
func BoundedSlab[T any](capacity int) (*Producer[T], *Consumer[T], error) {
	b, err := NewSlab[T](capacity)
	if err != nil {
		return nil, nil, err
	}
	p, c := b.Split()
	return p, c, nil
}

// Split returns the only Producer and the only Consumer of b.
//
// It panics if called more than once.
func (b *Buffer[T]) Split() (*Producer[T], *Consumer[T]) {
	if !b.split.CompareAndSwap(false, true) {
		panic("spsc: Buffer already split - only one producer and one consumer allowed")
	}
	return &Producer[T]{buf: b}, &Consumer[T]{buf: b}
}

// Len returns the number of unconsumed elements.
//
// The two cursors are loaded independently, so while the opposite side is
// active the result may be stale by the operations in flight. It never
// falls outside [0, Cap()].
func (b *Buffer[T]) Len() int {
	// read first: write can only have grown by the time it is loaded.
	r := b.read.Load()
	w := b.write.Load()
	return int(min(w-r, b.capacity))
}

// IsEmpty reports whether the cursors are equal. Advisory, like Len.
func (b *Buffer[T]) IsEmpty() bool {
	return b.read.Load() == b.write.Load()
}

// IsFull reports whether Len equals Cap. Advisory, like Len.
func (b *Buffer[T]) IsFull() bool {
	return uint64(b.Len()) == b.capacity
}

// Cap returns the fixed number of slots.
func (b *Buffer[T]) Cap() int {
	return int(b.capacity)
}
