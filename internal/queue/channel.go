package queue

// ChannelQueue adapts a buffered Go channel to the Queue contract. It is
// the yardstick the lock-free queues are compared against.
type ChannelQueue[T any] struct {
	ch chan T
}

// NewChannel returns a ChannelQueue whose channel buffers size elements.
// A negative size is treated as zero, giving a queue that rejects every Push.
func NewChannel[T any](size int) *ChannelQueue[T] {
	return &ChannelQueue[T]{
		ch: make(chan T, max(size, 0)),
	}
}

// Push sends v without waiting and reports whether the buffer had room.
func (q *ChannelQueue[T]) Push(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Pop receives without waiting. ok is false when nothing is buffered.
func (q *ChannelQueue[T]) Pop() (v T, ok bool) {
	select {
	case v = <-q.ch:
		return v, true
	default:
		return v, false
	}
}

// Len is the number of buffered elements at the time of the call.
func (q *ChannelQueue[T]) Len() int {
	return len(q.ch)
}

// Cap is the channel's buffer size.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.ch)
}
