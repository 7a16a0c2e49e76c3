package goseq

import (
	"iter"
	"reflect"
)

// Select returns a Pipeline that calls mapp for each element produced by p, mapping it to type U.
func Select[T any, U any](p *Pipeline[T], mapp MapperFunc[T, U]) *Pipeline[U] {
	mustPipeline("Select", "p", p)
	mustFunc("Select", "mapp", mapp)

	return newPipeline(func() iter.Seq[U] {
		return func(yield func(U) bool) {
			for index, elem := range p.Indexed() {
				if !yield(mapp(elem, index)) {
					return
				}
			}
		}
	})
}

// SelectMany returns a Pipeline that calls mapp for each element produced by p, mapping it to an
// intermediate sequence of elements of type U.
// The new Pipeline produces all elements of the intermediate sequences, in order.
func SelectMany[T any, U any](p *Pipeline[T], mapp MapperFunc[T, Iterable[U]]) *Pipeline[U] {
	mustPipeline("SelectMany", "p", p)

	return SelectManyResult(p, mapp, func(_ T, elem U) U {
		return elem
	})
}

// SelectManyResult is like SelectMany, but calls result for each element of the intermediate
// sequences, together with the element of p the sequence was produced from.
func SelectManyResult[T any, C any, R any](p *Pipeline[T], mapp MapperFunc[T, Iterable[C]], result func(elem T, child C) R) *Pipeline[R] {
	mustPipeline("SelectMany", "p", p)
	mustFunc("SelectMany", "mapp", mapp)
	mustFunc("SelectMany", "result", result)

	return newPipeline(func() iter.Seq[R] {
		return func(yield func(R) bool) {
			for index, elem := range p.Indexed() {
				children := mapp(elem, index)
				if isNil(children) {
					continue
				}

				for child := range children.All() {
					if !yield(result(elem, child)) {
						return
					}
				}
			}
		}
	})
}

// Where returns a Pipeline that calls pred for each element produced by p, and only produces elements
// for which pred returns true.
// The index passed to pred is the index of the element in p.
func (p *Pipeline[T]) Where(pred PredicateFunc[T]) *Pipeline[T] {
	mustPipeline("Where", "p", p)
	mustFunc("Where", "pred", pred)

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for index, elem := range p.Indexed() {
				if !pred(elem, index) {
					continue
				}

				if !yield(elem) {
					return
				}
			}
		}
	})
}

// Peek returns a Pipeline that calls peek for each element produced by p, in order, and produces the same elements.
func (p *Pipeline[T]) Peek(peek func(elem T, index int)) *Pipeline[T] {
	mustPipeline("Peek", "p", p)
	mustFunc("Peek", "peek", peek)

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for index, elem := range p.Indexed() {
				peek(elem, index)

				if !yield(elem) {
					return
				}
			}
		}
	})
}

// Take returns a Pipeline that produces the same elements as p, in order, up to count elements.
// p is not asked for more elements once count elements have been produced.
func (p *Pipeline[T]) Take(count int) *Pipeline[T] {
	mustPipeline("Take", "p", p)
	mustCount("Take", "count", count)

	if count == 0 {
		return Empty[T]()
	}

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			done := 0

			for elem := range p.All() {
				if !yield(elem) {
					return
				}

				done++
				if done == count {
					return
				}
			}
		}
	})
}

// TakeWhile returns a Pipeline that produces the elements of p, in order, as long as pred returns true.
// The index passed to pred is the number of elements evaluated before elem.
func (p *Pipeline[T]) TakeWhile(pred PredicateFunc[T]) *Pipeline[T] {
	mustPipeline("TakeWhile", "p", p)
	mustFunc("TakeWhile", "pred", pred)

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for index, elem := range p.Indexed() {
				if !pred(elem, index) || !yield(elem) {
					return
				}
			}
		}
	})
}

// TakeLast returns a Pipeline that produces the last count elements of p, in order.
func (p *Pipeline[T]) TakeLast(count int) *Pipeline[T] {
	mustPipeline("TakeLast", "p", p)
	mustCount("TakeLast", "count", count)

	if count == 0 {
		return Empty[T]()
	}

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			buf := newRing[T](count)

			for elem := range p.All() {
				buf.push(elem)
			}

			for elem := range buf.all() {
				if !yield(elem) {
					return
				}
			}
		}
	})
}

// Skip returns a Pipeline that produces the same elements as p, in order, skipping the first count elements.
func (p *Pipeline[T]) Skip(count int) *Pipeline[T] {
	mustPipeline("Skip", "p", p)
	mustCount("Skip", "count", count)

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			done := 0

			for elem := range p.All() {
				done++
				if done <= count {
					continue
				}

				if !yield(elem) {
					return
				}
			}
		}
	})
}

// SkipWhile returns a Pipeline that skips the elements of p as long as pred returns true, and then
// produces the remaining elements.
// The index passed to pred is the number of elements evaluated before elem.
func (p *Pipeline[T]) SkipWhile(pred PredicateFunc[T]) *Pipeline[T] {
	mustPipeline("SkipWhile", "p", p)
	mustFunc("SkipWhile", "pred", pred)

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			skipping := true

			for index, elem := range p.Indexed() {
				if skipping {
					skipping = pred(elem, index)
					if skipping {
						continue
					}
				}

				if !yield(elem) {
					return
				}
			}
		}
	})
}

// SkipLast returns a Pipeline that produces the elements of p, in order, omitting the last count elements.
// Elements are produced as soon as more than count elements have been received from p.
func (p *Pipeline[T]) SkipLast(count int) *Pipeline[T] {
	mustPipeline("SkipLast", "p", p)
	mustCount("SkipLast", "count", count)

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			buf := newRing[T](count)

			for elem := range p.All() {
				if old, ok := buf.push(elem); ok && !yield(old) {
					return
				}
			}
		}
	})
}

// Distinct returns a Pipeline that produces the elements of p, in order, omitting elements equal to an
// element produced before, using native equality.
func (p *Pipeline[T]) Distinct() *Pipeline[T] {
	mustPipeline("Distinct", "p", p)

	return p.distinct(nil)
}

// DistinctFunc is like Distinct, but uses eq to compare elements.
func (p *Pipeline[T]) DistinctFunc(eq EqualFunc[T]) *Pipeline[T] {
	mustPipeline("DistinctFunc", "p", p)
	mustFunc("DistinctFunc", "eq", eq)

	return p.distinct(eq)
}

func (p *Pipeline[T]) distinct(eq EqualFunc[T]) *Pipeline[T] {
	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			seen := NewEqualityGroup[T, struct{}](eq, nil)

			for elem := range p.All() {
				if seen.Has(elem) {
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

// DefaultIfEmpty returns a Pipeline that produces the elements of p, or only def if p produces no elements.
func (p *Pipeline[T]) DefaultIfEmpty(def T) *Pipeline[T] {
	mustPipeline("DefaultIfEmpty", "p", p)

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			empty := true

			for elem := range p.All() {
				empty = false

				if !yield(elem) {
					return
				}
			}

			if empty {
				yield(def)
			}
		}
	})
}

// Reverse returns a Pipeline that produces the elements of p in reverse order.
// All elements of p are received before the first element is produced.
func (p *Pipeline[T]) Reverse() *Pipeline[T] {
	mustPipeline("Reverse", "p", p)

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			elems := p.ToSlice()

			for i := len(elems) - 1; i >= 0; i-- {
				if !yield(elems[i]) {
					return
				}
			}
		}
	})
}

// Flat returns a Pipeline that produces the elements of p, replacing nested Pipelines, slices, and
// arrays by their elements, recursively.
// Without depth, nesting is flattened completely. With depth, flattening stops once it reaches
// depth-1 levels of nesting; a depth of 1 or less produces the elements of p unchanged.
func (p *Pipeline[T]) Flat(depth ...int) *Pipeline[any] {
	mustPipeline("Flat", "p", p)

	if len(depth) > 1 {
		panic(&ArgumentError{Op: "Flat", Name: "depth", Reason: "must be given at most once"})
	}

	limit := -1
	if len(depth) == 1 {
		limit = max(depth[0], 1)
	}

	return newPipeline(func() iter.Seq[any] {
		return flatten(p.flatAny(), limit)
	})
}

// flatten returns a sequence of the elements of seq, flattened up to depth levels, or completely
// if depth is negative.
func flatten(seq iter.Seq[any], depth int) iter.Seq[any] {
	if depth == 0 || depth == 1 {
		return seq
	}

	next := depth - 1
	if depth < 0 {
		next = -1
	}

	return func(yield func(any) bool) {
		for elem := range seq {
			nested, ok := nestedSeq(elem)
			if !ok {
				if !yield(elem) {
					return
				}

				continue
			}

			for child := range flatten(nested, next) {
				if !yield(child) {
					return
				}
			}
		}
	}
}

// nestedSeq returns a sequence of the elements of elem if elem is a Pipeline, slice, or array.
func nestedSeq(elem any) (iter.Seq[any], bool) {
	if f, ok := elem.(flattenable); ok {
		return f.flatAny(), true
	}

	v := reflect.ValueOf(elem)

	switch v.Kind() {
	case reflect.Array, reflect.Slice:
		return func(yield func(any) bool) {
			for i := 0; i < v.Len(); i++ {
				if !yield(v.Index(i).Interface()) {
					return
				}
			}
		}, true

	default:
		return nil, false
	}
}
