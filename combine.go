package goseq

import (
	"iter"
	"strconv"
)

// Concat returns a Pipeline that produces the elements of p, followed by the elements of each of seqs, in order.
func (p *Pipeline[T]) Concat(seqs ...Iterable[T]) *Pipeline[T] {
	mustPipeline("Concat", "p", p)

	for i, seq := range seqs {
		mustIterable("Concat", "seqs["+strconv.Itoa(i)+"]", seq)
	}

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for elem := range p.All() {
				if !yield(elem) {
					return
				}
			}

			for _, seq := range seqs {
				for elem := range seq.All() {
					if !yield(elem) {
						return
					}
				}
			}
		}
	})
}

// Append returns a Pipeline that produces the elements of p, followed by elems.
func (p *Pipeline[T]) Append(elems ...T) *Pipeline[T] {
	mustPipeline("Append", "p", p)

	return p.Concat(FromSlice(elems))
}

// Prepend returns a Pipeline that produces elems, followed by the elements of p.
func (p *Pipeline[T]) Prepend(elems ...T) *Pipeline[T] {
	mustPipeline("Prepend", "p", p)

	return FromSlice(elems).Concat(p)
}

// Zip returns a Pipeline that calls zip for each pair of elements produced by p and other at the same
// index. It stops as soon as either of them runs out of elements.
func Zip[T any, U any, R any](p *Pipeline[T], other Iterable[U], zip func(a T, b U, index int) R) *Pipeline[R] {
	mustPipeline("Zip", "p", p)
	mustFunc("Zip", "zip", zip)
	mustIterable("Zip", "other", other)

	return newPipeline(func() iter.Seq[R] {
		return func(yield func(R) bool) {
			nextA, stopA := iter.Pull(p.All())
			defer stopA()

			nextB, stopB := iter.Pull(other.All())
			defer stopB()

			for index := 0; ; index++ {
				a, ok := nextA()
				if !ok {
					return
				}

				b, ok := nextB()
				if !ok {
					return
				}

				if !yield(zip(a, b, index)) {
					return
				}
			}
		}
	})
}

// Union returns a Pipeline that produces the distinct elements of p, followed by the distinct
// elements of other that were not produced by p, using native equality.
func (p *Pipeline[T]) Union(other Iterable[T]) *Pipeline[T] {
	mustPipeline("Union", "p", p)
	mustIterable("Union", "other", other)

	return p.Concat(other).distinct(nil)
}

// UnionFunc is like Union, but uses eq to compare elements.
func (p *Pipeline[T]) UnionFunc(other Iterable[T], eq EqualFunc[T]) *Pipeline[T] {
	mustPipeline("UnionFunc", "p", p)
	mustIterable("UnionFunc", "other", other)
	mustFunc("UnionFunc", "eq", eq)

	return p.Concat(other).distinct(eq)
}

// Intersect returns a Pipeline that produces the distinct elements of p that are also produced by
// other, using native equality. The elements of other are received when the first element is requested.
func (p *Pipeline[T]) Intersect(other Iterable[T]) *Pipeline[T] {
	mustPipeline("Intersect", "p", p)
	mustIterable("Intersect", "other", other)

	return p.intersect(other, nil, true)
}

// IntersectFunc is like Intersect, but uses eq to compare elements.
func (p *Pipeline[T]) IntersectFunc(other Iterable[T], eq EqualFunc[T]) *Pipeline[T] {
	mustPipeline("IntersectFunc", "p", p)
	mustIterable("IntersectFunc", "other", other)
	mustFunc("IntersectFunc", "eq", eq)

	return p.intersect(other, eq, true)
}

// Except returns a Pipeline that produces the distinct elements of p that are not produced by
// other, using native equality. The elements of other are received when the first element is requested.
func (p *Pipeline[T]) Except(other Iterable[T]) *Pipeline[T] {
	mustPipeline("Except", "p", p)
	mustIterable("Except", "other", other)

	return p.intersect(other, nil, false)
}

// ExceptFunc is like Except, but uses eq to compare elements.
func (p *Pipeline[T]) ExceptFunc(other Iterable[T], eq EqualFunc[T]) *Pipeline[T] {
	mustPipeline("ExceptFunc", "p", p)
	mustIterable("ExceptFunc", "other", other)
	mustFunc("ExceptFunc", "eq", eq)

	return p.intersect(other, eq, false)
}

// intersect produces the distinct elements of p whose presence in other equals want.
func (p *Pipeline[T]) intersect(other Iterable[T], eq EqualFunc[T], want bool) *Pipeline[T] {
	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			set := NewEqualityGroup[T, struct{}](eq, nil)
			for elem := range other.All() {
				if !set.Has(elem) {
					set.Set(elem, struct{}{})
				}
			}

			seen := NewEqualityGroup[T, struct{}](eq, nil)

			for elem := range p.All() {
				if set.Has(elem) != want || seen.Has(elem) {
					continue
				}

				seen.Set(elem, struct{}{})

				if !yield(elem) {
					return
				}
			}
		}
	})
}

// mustIterable panics with an *ArgumentError if seq is nil.
func mustIterable[T any](op string, name string, seq Iterable[T]) {
	if isNil(seq) {
		panic(&ArgumentError{Op: op, Name: name, Reason: "must be a non-nil Iterable"})
	}
}

// isNil returns true if seq is nil, including a nil or zero *Pipeline or *OrderedPipeline held in seq.
func isNil[T any](seq Iterable[T]) bool {
	switch s := seq.(type) {
	case nil:
		return true

	case *Pipeline[T]:
		return s == nil || s.rule == nil

	case *OrderedPipeline[T]:
		return s == nil || s.Pipeline == nil || s.rule == nil

	default:
		return false
	}
}
