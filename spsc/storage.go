package spsc

// Storage is the slot backend of a Buffer.
//
// Positions passed to Write and Take are raw cursor values; the storage
// reduces them modulo Cap(). The cursor protocol guarantees Write is only
// called for a vacant slot and Take only for an occupied one, and that the
// two are never called concurrently for the same slot.
type Storage[T any] interface {
	// Cap returns the number of slots.
	Cap() int

	// Write places item into the slot for pos.
	Write(pos uint64, item T)

	// Take removes and returns the occupant of the slot for pos.
	// ok is false if the slot was vacant.
	Take(pos uint64) (item T, ok bool)
}

// ring maps cursor values onto slot indexes.
type ring struct {
	n    uint64
	mask uint64
	pow2 bool
}

func newRing(capacity int) ring {
	if capacity <= 0 {
		return ring{}
	}
	n := uint64(capacity)
	return ring{
		n:    n,
		mask: n - 1,
		pow2: n&(n-1) == 0,
	}
}

func (r ring) index(pos uint64) int {
	if r.pow2 {
		return int(pos & r.mask)
	}
	return int(pos % r.n)
}

type cell[T any] struct {
	val  T
	full bool
}

// ArrayStorage is a fixed slice of optional cells addressed directly by
// position. It allocates only at construction.
type ArrayStorage[T any] struct {
	cells []cell[T]
	ring  ring
}

// NewArrayStorage returns an ArrayStorage with capacity empty cells.
func NewArrayStorage[T any](capacity int) *ArrayStorage[T] {
	return &ArrayStorage[T]{
		cells: make([]cell[T], max(capacity, 0)),
		ring:  newRing(capacity),
	}
}

// Cap returns the number of cells.
func (s *ArrayStorage[T]) Cap() int {
	return len(s.cells)
}

// Write overwrites the cell for pos with item.
func (s *ArrayStorage[T]) Write(pos uint64, item T) {
	c := &s.cells[s.ring.index(pos)]
	c.val = item
	c.full = true
}

// Take empties the cell for pos and returns what it held.
func (s *ArrayStorage[T]) Take(pos uint64) (T, bool) {
	var zero T
	c := &s.cells[s.ring.index(pos)]
	if !c.full {
		return zero, false
	}
	v := c.val
	c.val = zero
	c.full = false
	return v, true
}
