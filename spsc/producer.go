package spsc

// Producer is the push side of a Buffer.
//
// SPSC CONTRACT: only ONE goroutine may use a Producer.
type Producer[T any] struct {
	buf *Buffer[T]

	// write mirrors buf.write; only this handle stores it.
	write uint64

	closed bool
	guard  guard
}

// Push appends item to the queue.
//
// If the queue is full the item is rejected: Push returns it unchanged with
// ok == false and the queue is not modified. On success it returns the zero
// value and true.
func (p *Producer[T]) Push(item T) (rejected T, ok bool) {
	p.guard.enter("Push")

	if p.closed {
		p.guard.exit()
		panic("spsc: Push on closed Producer")
	}

	b := p.buf
	w := p.write
	if w-b.read.Load() == b.capacity {
		p.guard.exit()
		return item, false
	}

	b.storage.Write(w, item)

	// Publish only after the slot is written.
	p.write = w + 1
	b.write.Store(w + 1)

	p.guard.exit()
	return rejected, true
}

// IsEmpty reports whether the queue holds no elements. Advisory.
func (p *Producer[T]) IsEmpty() bool {
	return p.buf.IsEmpty()
}

// IsFull reports whether the next Push would be rejected. Advisory.
func (p *Producer[T]) IsFull() bool {
	return p.buf.IsFull()
}

// Len returns the number of unconsumed elements. Advisory.
func (p *Producer[T]) Len() int {
	return p.buf.Len()
}

// Cap returns the queue capacity.
func (p *Producer[T]) Cap() int {
	return p.buf.Cap()
}

// Close marks the producing side as finished. Elements already pushed stay
// available to the Consumer. Close is idempotent; Push after Close panics.
func (p *Producer[T]) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.buf.producerClosed.Store(true)
}

// PeerClosed reports whether the Consumer has been closed. Pushes keep
// succeeding until the queue fills up.
func (p *Producer[T]) PeerClosed() bool {
	return p.buf.consumerClosed.Load()
}
