package queue

import "github.com/randomizedcoder/donut/spsc"

// Donut holds both handles of one spsc.Buffer behind the Queue contract.
//
// The caller keeps the SPSC discipline: Push from one goroutine, Pop from one.
type Donut[T any] struct {
	prod *spsc.Producer[T]
	cons *spsc.Consumer[T]
}

// NewDonut returns a Donut over an array-backed buffer of size slots.
func NewDonut[T any](size int) (*Donut[T], error) {
	prod, cons, err := spsc.Bounded[T](size)
	if err != nil {
		return nil, err
	}
	return &Donut[T]{prod: prod, cons: cons}, nil
}

// NewDonutSlab returns a Donut over a slab-backed buffer of size slots.
func NewDonutSlab[T any](size int) (*Donut[T], error) {
	prod, cons, err := spsc.BoundedSlab[T](size)
	if err != nil {
		return nil, err
	}
	return &Donut[T]{prod: prod, cons: cons}, nil
}

// Push adds an item to the queue.
// Returns false if the queue is full; the item is not kept.
func (d *Donut[T]) Push(v T) bool {
	_, ok := d.prod.Push(v)
	return ok
}

// Pop removes and returns an item from the queue.
// Returns false if the queue is empty.
func (d *Donut[T]) Pop() (T, bool) {
	return d.cons.Pop()
}

// Len returns the current number of items in the queue.
// This is an approximation and may be slightly stale.
func (d *Donut[T]) Len() int {
	return d.prod.Len()
}

// Cap returns the capacity of the queue.
func (d *Donut[T]) Cap() int {
	return d.prod.Cap()
}

// Producer exposes the push handle for callers that want the rejected item back.
func (d *Donut[T]) Producer() *spsc.Producer[T] {
	return d.prod
}

// Consumer exposes the pop handle.
func (d *Donut[T]) Consumer() *spsc.Consumer[T] {
	return d.cons
}
