package goseq

import "iter"

// Iterable is implemented by values that can produce a fresh sequence of elements on every call.
// *Pipeline implements Iterable.
type Iterable[T any] interface {
	// All returns a sequence of the elements.
	All() iter.Seq[T]
}

// A Pipeline is a deferred sequence of elements of type T.
//
// A Pipeline wraps exactly one production rule, which is invoked from scratch every time the
// Pipeline is iterated. Operations on a Pipeline return new Pipelines and never modify their
// receiver.
type Pipeline[T any] struct {
	rule func() iter.Seq[T]
}

// newPipeline returns a Pipeline with production rule rule.
func newPipeline[T any](rule func() iter.Seq[T]) *Pipeline[T] {
	return &Pipeline[T]{rule: rule}
}

// seqPipeline returns a Pipeline whose production rule always returns seq.
// seq itself must be restartable for the Pipeline to be.
func seqPipeline[T any](seq iter.Seq[T]) *Pipeline[T] {
	return newPipeline(func() iter.Seq[T] {
		return seq
	})
}

// All returns a sequence of the elements of p. Each call invokes p's production rule again.
func (p *Pipeline[T]) All() iter.Seq[T] {
	return p.rule()
}

// Indexed returns a sequence of the elements of p, paired with their 0-based index.
func (p *Pipeline[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0

		for elem := range p.All() {
			if !yield(index, elem) {
				return
			}

			index++
		}
	}
}

// flatAny implements flattenable.
func (p *Pipeline[T]) flatAny() iter.Seq[any] {
	return func(yield func(any) bool) {
		for elem := range p.All() {
			if !yield(elem) {
				return
			}
		}
	}
}

// flattenable is implemented by *Pipeline of any element type.
type flattenable interface {
	flatAny() iter.Seq[any]
}
