// Package slab provides a fixed-capacity pool that hands out entries by
// opaque handle.
//
// The pool is allocated once at construction and never grows. A handle
// returned by Insert stays reserved for the life of the pool: Take empties
// it and Set refills it in place, so a caller that binds each handle to a
// fixed role never allocates after the first Insert per role.
//
// A Slab is not safe for concurrent use in general. The one exception the
// spsc package relies on: the backing array never moves, so one goroutine
// may Take an occupied handle while another calls Insert or Set on a
// different handle, provided the two are ordered by an external
// happens-before edge for any handle they share.
package slab

import (
	"errors"
	"sync/atomic"
)

// Key is an opaque handle to a pool entry.
type Key int

// None marks the absence of a handle.
const None Key = -1

// ErrFull is returned by Insert when every entry is reserved.
var ErrFull = errors.New("slab: pool is full")

type entry[T any] struct {
	val      T
	occupied bool
}

// Slab is a pool of up to Cap() values addressed by Key.
type Slab[T any] struct {
	entries []entry[T]

	// reserved is the number of handles ever handed out; entries[reserved:]
	// have never been used. Written only by Insert.
	reserved int

	// live is shared between the Insert/Set side and the Take side.
	live atomic.Int64
}

// New allocates a pool for capacity entries.
func New[T any](capacity int) *Slab[T] {
	return &Slab[T]{
		entries: make([]entry[T], max(capacity, 0)),
	}
}

// Insert stores v in a fresh entry and returns its handle.
func (s *Slab[T]) Insert(v T) (Key, error) {
	if s.reserved == len(s.entries) {
		return None, ErrFull
	}
	k := Key(s.reserved)
	s.reserved++

	e := &s.entries[k]
	e.val = v
	e.occupied = true
	s.live.Add(1)
	return k, nil
}

// Set overwrites the value behind k in place and marks it occupied.
// It returns false if k was never returned by Insert.
func (s *Slab[T]) Set(k Key, v T) bool {
	if !s.inRange(k) || int(k) >= s.reserved {
		return false
	}
	e := &s.entries[k]
	if !e.occupied {
		s.live.Add(1)
	}
	e.val = v
	e.occupied = true
	return true
}

// Take moves the value out of k and leaves the entry vacant. The handle
// stays reserved and can be refilled with Set.
func (s *Slab[T]) Take(k Key) (T, bool) {
	var zero T
	if !s.inRange(k) || !s.entries[k].occupied {
		return zero, false
	}
	e := &s.entries[k]
	v := e.val
	e.val = zero
	e.occupied = false
	s.live.Add(-1)
	return v, true
}

// Len returns the number of occupied entries.
func (s *Slab[T]) Len() int {
	return int(s.live.Load())
}

// Cap returns the number of entries the pool was built with.
func (s *Slab[T]) Cap() int {
	return len(s.entries)
}

// inRange reports whether k addresses an entry of the backing array. Take
// checks bounds only: s.reserved belongs to the Insert/Set side, and an
// entry that was never inserted is never occupied.
func (s *Slab[T]) inRange(k Key) bool {
	return k >= 0 && int(k) < len(s.entries)
}
