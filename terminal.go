package goseq

import "iter"

// ForEach calls each for each element produced by p, in order.
func (p *Pipeline[T]) ForEach(each func(elem T, index int)) {
	mustPipeline("ForEach", "p", p)
	mustFunc("ForEach", "each", each)

	for index, elem := range p.Indexed() {
		each(elem, index)
	}
}

// Aggregate folds the elements of p into an accumulator using reduce, seeding the accumulator with
// the first element. The index passed to reduce counts the calls to reduce.
// If p produces no elements, it returns ErrEmptySequence.
func (p *Pipeline[T]) Aggregate(reduce func(acc T, elem T, index int) T) (T, error) {
	mustPipeline("Aggregate", "p", p)
	mustFunc("Aggregate", "reduce", reduce)

	next, stop := iter.Pull(p.All())
	defer stop()

	acc, ok := next()
	if !ok {
		return acc, ErrEmptySequence
	}

	for index := 0; ; index++ {
		elem, ok := next()
		if !ok {
			return acc, nil
		}

		acc = reduce(acc, elem, index)
	}
}

// AggregateSeed folds the elements of p into accumulator seed using reduce, returning the final accumulator.
// The index passed to reduce is the index of elem.
func AggregateSeed[T any, A any](p *Pipeline[T], seed A, reduce func(acc A, elem T, index int) A) A {
	mustPipeline("AggregateSeed", "p", p)

	return AggregateSelect(p, seed, reduce, Identity[A])
}

// AggregateSelect is like AggregateSeed, but returns the result of calling result with the final accumulator.
func AggregateSelect[T any, A any, R any](p *Pipeline[T], seed A, reduce func(acc A, elem T, index int) A, result Function[A, R]) R {
	mustPipeline("Aggregate", "p", p)
	mustFunc("Aggregate", "reduce", reduce)
	mustFunc("Aggregate", "result", result)

	acc := seed
	for index, elem := range p.Indexed() {
		acc = reduce(acc, elem, index)
	}

	return result(acc)
}

// Any returns true if p produces at least one element.
func (p *Pipeline[T]) Any() bool {
	mustPipeline("Any", "p", p)

	for range p.All() {
		return true
	}

	return false
}

// AnyMatch returns true as soon as pred returns true for an element produced by p, that is, an element matches.
func (p *Pipeline[T]) AnyMatch(pred MatchFunc[T]) bool {
	mustPipeline("AnyMatch", "p", p)
	mustFunc("AnyMatch", "pred", pred)

	for elem := range p.All() {
		if pred(elem) {
			return true
		}
	}

	return false
}

// AllMatch returns true if pred returns true for all elements produced by p, that is, all elements match.
// It returns false as soon as an element does not match.
func (p *Pipeline[T]) AllMatch(pred MatchFunc[T]) bool {
	mustPipeline("AllMatch", "p", p)
	mustFunc("AllMatch", "pred", pred)

	for elem := range p.All() {
		if !pred(elem) {
			return false
		}
	}

	return true
}

// Count returns the number of elements produced by p.
func (p *Pipeline[T]) Count() int {
	mustPipeline("Count", "p", p)

	return p.CountFunc(Always[T])
}

// CountFunc returns the number of elements produced by p for which pred returns true.
func (p *Pipeline[T]) CountFunc(pred MatchFunc[T]) int {
	mustPipeline("CountFunc", "p", p)
	mustFunc("CountFunc", "pred", pred)

	count := 0

	for elem := range p.All() {
		if pred(elem) {
			count++
		}
	}

	return count
}

// Contains returns true if p produces an element equal to value, using DefaultEquality.
func (p *Pipeline[T]) Contains(value T) bool {
	mustPipeline("Contains", "p", p)

	return p.ContainsFunc(value, DefaultEquality[T])
}

// ContainsFunc returns true if p produces an element for which eq returns true when compared to value.
func (p *Pipeline[T]) ContainsFunc(value T, eq EqualFunc[T]) bool {
	mustPipeline("ContainsFunc", "p", p)
	mustFunc("ContainsFunc", "eq", eq)

	for elem := range p.All() {
		if eq(elem, value) {
			return true
		}
	}

	return false
}

// SequenceEqual returns true if p and other produce the same number of elements, and elements at the
// same index are equal, using DefaultEquality.
func (p *Pipeline[T]) SequenceEqual(other Iterable[T]) bool {
	mustPipeline("SequenceEqual", "p", p)

	return p.SequenceEqualFunc(other, DefaultEquality[T])
}

// SequenceEqualFunc is like SequenceEqual, but uses eq to compare elements.
func (p *Pipeline[T]) SequenceEqualFunc(other Iterable[T], eq EqualFunc[T]) bool {
	mustPipeline("SequenceEqual", "p", p)
	mustIterable("SequenceEqual", "other", other)
	mustFunc("SequenceEqual", "eq", eq)

	nextA, stopA := iter.Pull(p.All())
	defer stopA()

	nextB, stopB := iter.Pull(other.All())
	defer stopB()

	for {
		a, okA := nextA()
		b, okB := nextB()

		switch {
		case !okA && !okB:
			return true

		case okA != okB, !eq(a, b):
			return false
		}
	}
}

// ElementAt returns the element at index.
// If p produces index or fewer elements, it returns an *IndexError.
func (p *Pipeline[T]) ElementAt(index int) (T, error) {
	mustPipeline("ElementAt", "p", p)
	mustCount("ElementAt", "index", index)

	length := 0

	for i, elem := range p.Indexed() {
		if i == index {
			return elem, nil
		}

		length++
	}

	var zero T
	return zero, &IndexError{Index: index, Length: length}
}

// ElementAtOrDefault returns the element at index, or def if p produces index or fewer elements.
func (p *Pipeline[T]) ElementAtOrDefault(index int, def T) T {
	mustPipeline("ElementAtOrDefault", "p", p)

	elem, err := p.ElementAt(index)
	if err != nil {
		return def
	}

	return elem
}

// First returns the first element produced by p.
// If p produces no elements, it returns ErrNoMatch.
func (p *Pipeline[T]) First() (T, error) {
	mustPipeline("First", "p", p)

	return p.FirstFunc(Always[T])
}

// FirstFunc returns the first element produced by p for which pred returns true.
// If no element matches, it returns ErrNoMatch.
func (p *Pipeline[T]) FirstFunc(pred MatchFunc[T]) (T, error) {
	mustPipeline("FirstFunc", "p", p)
	mustFunc("FirstFunc", "pred", pred)

	for elem := range p.All() {
		if pred(elem) {
			return elem, nil
		}
	}

	var zero T
	return zero, ErrNoMatch
}

// FirstOrDefault returns the first element produced by p, or def if p produces no elements.
func (p *Pipeline[T]) FirstOrDefault(def T) T {
	mustPipeline("FirstOrDefault", "p", p)

	return p.FirstOrDefaultFunc(Always[T], def)
}

// FirstOrDefaultFunc returns the first element produced by p for which pred returns true, or def if
// no element matches.
func (p *Pipeline[T]) FirstOrDefaultFunc(pred MatchFunc[T], def T) T {
	mustPipeline("FirstOrDefaultFunc", "p", p)

	elem, err := p.FirstFunc(pred)
	if err != nil {
		return def
	}

	return elem
}

// Last returns the last element produced by p.
// If p produces no elements, it returns ErrNoMatch.
func (p *Pipeline[T]) Last() (T, error) {
	mustPipeline("Last", "p", p)

	return p.LastFunc(Always[T])
}

// LastFunc returns the last element produced by p for which pred returns true.
// If no element matches, it returns ErrNoMatch.
func (p *Pipeline[T]) LastFunc(pred MatchFunc[T]) (T, error) {
	mustPipeline("LastFunc", "p", p)
	mustFunc("LastFunc", "pred", pred)

	var last T

	found := false

	for elem := range p.All() {
		if pred(elem) {
			last = elem
			found = true
		}
	}

	if !found {
		return last, ErrNoMatch
	}

	return last, nil
}

// LastOrDefault returns the last element produced by p, or def if p produces no elements.
func (p *Pipeline[T]) LastOrDefault(def T) T {
	mustPipeline("LastOrDefault", "p", p)

	return p.LastOrDefaultFunc(Always[T], def)
}

// LastOrDefaultFunc returns the last element produced by p for which pred returns true, or def if
// no element matches.
func (p *Pipeline[T]) LastOrDefaultFunc(pred MatchFunc[T], def T) T {
	mustPipeline("LastOrDefaultFunc", "p", p)

	elem, err := p.LastFunc(pred)
	if err != nil {
		return def
	}

	return elem
}

// Single returns the only element produced by p.
// If p produces no elements, it returns ErrNoMatch. If p produces more than one element, it returns
// ErrMultipleMatch.
func (p *Pipeline[T]) Single() (T, error) {
	mustPipeline("Single", "p", p)

	return p.SingleFunc(Always[T])
}

// SingleFunc returns the only element produced by p for which pred returns true.
// If no element matches, it returns ErrNoMatch. If more than one element matches, it returns
// ErrMultipleMatch as soon as the second match is found.
func (p *Pipeline[T]) SingleFunc(pred MatchFunc[T]) (T, error) {
	mustPipeline("SingleFunc", "p", p)
	mustFunc("SingleFunc", "pred", pred)

	var found T

	foundSome := false

	for elem := range p.All() {
		if !pred(elem) {
			continue
		}

		if foundSome {
			var zero T
			return zero, ErrMultipleMatch
		}

		found = elem
		foundSome = true
	}

	if !foundSome {
		return found, ErrNoMatch
	}

	return found, nil
}

// SingleOrDefault returns the only element produced by p, or def if p produces no elements.
// If p produces more than one element, it returns ErrMultipleMatch.
func (p *Pipeline[T]) SingleOrDefault(def T) (T, error) {
	mustPipeline("SingleOrDefault", "p", p)

	return p.SingleOrDefaultFunc(Always[T], def)
}

// SingleOrDefaultFunc returns the only element produced by p for which pred returns true, or def if no
// element matches. If more than one element matches, it returns ErrMultipleMatch.
func (p *Pipeline[T]) SingleOrDefaultFunc(pred MatchFunc[T], def T) (T, error) {
	mustPipeline("SingleOrDefaultFunc", "p", p)

	elem, err := p.SingleFunc(pred)

	switch err {
	case nil:
		return elem, nil

	case ErrNoMatch:
		return def, nil

	default:
		return elem, err
	}
}
