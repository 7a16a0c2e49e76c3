package goseq

import "context"

// receive returns the next element received through ch, or false if ch is closed or ctx is done.
func receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	select {
	case elem, ok := <-ch:
		return elem, ok

	case <-ctx.Done():
		var zero T
		return zero, false
	}
}

// contextDone returns true if ctx.Err() != nil.
func contextDone(ctx context.Context) bool {
	return ctx.Err() != nil
}
