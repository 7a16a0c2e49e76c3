package goseq

import (
	"iter"

	"golang.org/x/exp/slices"
)

// Join returns a Pipeline that correlates the elements of p and inner based on matching keys, using
// native equality. For every element of p, one pair is produced for each element of inner whose
// key matches, in the order of inner.
// inner is received completely when the first element is requested.
func Join[T any, U any, K any](p *Pipeline[T], inner Iterable[U], outerKey Function[T, K], innerKey Function[U, K]) *Pipeline[KeyValue[T, U]] {
	mustPipeline("Join", "p", p)

	return JoinFunc(p, inner, outerKey, innerKey, Pair[T, U], nil)
}

// JoinFunc is like Join, but calls result for each pair of matching elements. If eq is not nil,
// it is used to compare keys instead of native equality.
func JoinFunc[T any, U any, K any, R any](p *Pipeline[T], inner Iterable[U], outerKey Function[T, K], innerKey Function[U, K],
	result func(outer T, inner U) R, eq EqualFunc[K],
) *Pipeline[R] {
	mustPipeline("Join", "p", p)
	mustIterable("Join", "inner", inner)
	mustFunc("Join", "outerKey", outerKey)
	mustFunc("Join", "innerKey", innerKey)
	mustFunc("Join", "result", result)

	return newPipeline(func() iter.Seq[R] {
		return func(yield func(R) bool) {
			lookup := groupInner(inner, innerKey, eq)

			for elem := range p.All() {
				for _, match := range lookup.Get(outerKey(elem)) {
					if !yield(result(elem, match)) {
						return
					}
				}
			}
		}
	})
}

// GroupJoin returns a Pipeline that correlates the elements of p and inner based on matching keys,
// using native equality. For every element of p, exactly one pair is produced, holding the
// (possibly empty) slice of matching elements of inner. Every element of p gets its own slice.
// inner is received completely when the first element is requested.
func GroupJoin[T any, U any, K any](p *Pipeline[T], inner Iterable[U], outerKey Function[T, K], innerKey Function[U, K]) *Pipeline[KeyValue[T, []U]] {
	mustPipeline("GroupJoin", "p", p)

	return GroupJoinFunc(p, inner, outerKey, innerKey, Pair[T, []U], nil)
}

// GroupJoinFunc is like GroupJoin, but calls result for each element of p and its matches. If eq is not nil,
// it is used to compare keys instead of native equality.
func GroupJoinFunc[T any, U any, K any, R any](p *Pipeline[T], inner Iterable[U], outerKey Function[T, K], innerKey Function[U, K],
	result func(outer T, matches []U) R, eq EqualFunc[K],
) *Pipeline[R] {
	mustPipeline("GroupJoin", "p", p)
	mustIterable("GroupJoin", "inner", inner)
	mustFunc("GroupJoin", "outerKey", outerKey)
	mustFunc("GroupJoin", "innerKey", innerKey)
	mustFunc("GroupJoin", "result", result)

	return newPipeline(func() iter.Seq[R] {
		return func(yield func(R) bool) {
			lookup := groupInner(inner, innerKey, eq)

			for elem := range p.All() {
				if !yield(result(elem, slices.Clone(lookup.Get(outerKey(elem))))) {
					return
				}
			}
		}
	})
}

// GroupBy returns a Pipeline that groups the elements of p by key, using native equality.
// One pair is produced per distinct key, in the order in which keys were first seen, holding
// the elements of the group in the order produced by p.
// p is received completely when the first group is requested.
func GroupBy[T any, K any](p *Pipeline[T], key Function[T, K]) *Pipeline[KeyValue[K, []T]] {
	mustPipeline("GroupBy", "p", p)

	return GroupByFunc(p, key, Identity[T], Pair[K, []T], nil)
}

// GroupByFunc is like GroupBy, but maps each element using elem before adding it to its group, and
// calls result for each group. If eq is not nil, it is used to compare keys instead of native equality.
func GroupByFunc[T any, K any, E any, R any](p *Pipeline[T], key Function[T, K], elem Function[T, E],
	result func(key K, elems []E) R, eq EqualFunc[K],
) *Pipeline[R] {
	mustPipeline("GroupBy", "p", p)
	mustFunc("GroupBy", "key", key)
	mustFunc("GroupBy", "elem", elem)
	mustFunc("GroupBy", "result", result)

	return newPipeline(func() iter.Seq[R] {
		return func(yield func(R) bool) {
			groups := NewEqualityGroup[K, E](eq, nil)
			for e := range p.All() {
				groups.Set(key(e), elem(e))
			}

			for k, elems := range groups.All() {
				if !yield(result(k, elems)) {
					return
				}
			}
		}
	})
}

// groupInner groups the elements of inner by key.
func groupInner[U any, K any](inner Iterable[U], key Function[U, K], eq EqualFunc[K]) *EqualityGroup[K, U] {
	lookup := NewEqualityGroup[K, U](eq, []U{})
	for elem := range inner.All() {
		lookup.Set(key(elem), elem)
	}

	return lookup
}
