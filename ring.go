package goseq

import "iter"

// ring is a fixed-capacity FIFO buffer that evicts its oldest element when full.
// It is not safe for concurrent use.
type ring[T any] struct {
	buf  []T
	head int
	size int
}

func newRing[T any](capacity int) *ring[T] {
	return &ring[T]{
		buf: make([]T, capacity),
	}
}

// push appends elem. If the buffer was full, the oldest element is evicted and returned.
func (r *ring[T]) push(elem T) (T, bool) {
	var evicted T

	if len(r.buf) == 0 {
		return elem, true
	}

	if r.size < len(r.buf) {
		r.buf[(r.head+r.size)%len(r.buf)] = elem
		r.size++

		return evicted, false
	}

	evicted = r.buf[r.head]
	r.buf[r.head] = elem
	r.head = (r.head + 1) % len(r.buf)

	return evicted, true
}

// all returns a sequence of the buffered elements, oldest first.
func (r *ring[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.size; i++ {
			if !yield(r.buf[(r.head+i)%len(r.buf)]) {
				return
			}
		}
	}
}
