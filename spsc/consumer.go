package spsc

import "fmt"

// Consumer is the pop side of a Buffer.
//
// SPSC CONTRACT: only ONE goroutine may use a Consumer.
type Consumer[T any] struct {
	buf *Buffer[T]

	// read mirrors buf.read; only this handle stores it.
	read uint64

	closed bool
	guard  guard
}

// Pop removes and returns the oldest element.
// ok is false if the queue is empty.
func (c *Consumer[T]) Pop() (item T, ok bool) {
	c.guard.enter("Pop")

	if c.closed {
		c.guard.exit()
		panic("spsc: Pop on closed Consumer")
	}

	b := c.buf
	r := c.read
	if b.write.Load() == r {
		c.guard.exit()
		return item, false
	}

	item, ok = b.storage.Take(r)
	if !ok {
		c.guard.exit()
		panic(fmt.Sprintf("spsc: slot %d vacant below published write cursor", r%b.capacity))
	}

	// Release the slot to the producer only after it is emptied.
	c.read = r + 1
	b.read.Store(r + 1)

	c.guard.exit()
	return item, true
}

// IsEmpty reports whether the queue holds no elements. Advisory.
func (c *Consumer[T]) IsEmpty() bool {
	return c.buf.IsEmpty()
}

// Len returns the number of unconsumed elements. Advisory.
func (c *Consumer[T]) Len() int {
	return c.buf.Len()
}

// Cap returns the queue capacity.
func (c *Consumer[T]) Cap() int {
	return c.buf.Cap()
}

// Close marks the consuming side as finished. Close is idempotent; Pop
// after Close panics.
func (c *Consumer[T]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.buf.consumerClosed.Store(true)
}

// PeerClosed reports whether the Producer has been closed. Once it returns
// true, every element the Producer pushed is already visible: drain until
// Pop reports empty.
func (c *Consumer[T]) PeerClosed() bool {
	return c.buf.producerClosed.Load()
}
