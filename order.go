package goseq

import (
	"iter"

	"golang.org/x/exp/slices"
)

// An OrderedPipeline is a Pipeline whose elements are sorted by one or more criteria.
//
// Sorting is deferred until the OrderedPipeline is iterated. ThenBy and its variants add tie-breaking
// criteria to an OrderedPipeline, and the whole chain of criteria is then applied in a single
// stable sort, with the criterion given to OrderBy as the primary key.
//
// Methods of Pipeline are promoted and can be called on an OrderedPipeline directly. Package-level
// functions such as Select, GroupBy, Zip, or Sum take a *Pipeline, so pass the embedded Pipeline:
//
//	names := Select(OrderBy(pets, age).Pipeline, FuncMapper(petName))
type OrderedPipeline[T any] struct {
	*Pipeline[T]

	// parent is the OrderedPipeline this one refines, or nil if upstream is the unordered source.
	parent   *OrderedPipeline[T]
	upstream *Pipeline[T]
	crit     criterion[T]
}

// criterion is one key of a multi-key sort.
type criterion[T any] struct {
	// keys computes the sort keys of elems and returns a function that compares the keys at
	// positions i and j.
	keys func(elems []T) CompareFunc[int]

	// order is 1 for ascending and -1 for descending order.
	order int
}

// OrderBy returns an OrderedPipeline that produces the elements of p in ascending order of their keys,
// using DefaultComparer to compare keys.
func OrderBy[T any, K any](p *Pipeline[T], key Function[T, K]) *OrderedPipeline[T] {
	return newOrdered(p, nil, key, DefaultComparer[K], 1)
}

// OrderByFunc is like OrderBy, but uses cmp to compare keys.
func OrderByFunc[T any, K any](p *Pipeline[T], key Function[T, K], cmp CompareFunc[K]) *OrderedPipeline[T] {
	return newOrdered(p, nil, key, cmp, 1)
}

// OrderByDescending returns an OrderedPipeline that produces the elements of p in descending order of their keys,
// using DefaultComparer to compare keys.
func OrderByDescending[T any, K any](p *Pipeline[T], key Function[T, K]) *OrderedPipeline[T] {
	return newOrdered(p, nil, key, DefaultComparer[K], -1)
}

// OrderByDescendingFunc is like OrderByDescending, but uses cmp to compare keys.
func OrderByDescendingFunc[T any, K any](p *Pipeline[T], key Function[T, K], cmp CompareFunc[K]) *OrderedPipeline[T] {
	return newOrdered(p, nil, key, cmp, -1)
}

// ThenBy returns an OrderedPipeline that sorts elements that are tied in o in ascending order of their keys,
// using DefaultComparer to compare keys.
func ThenBy[T any, K any](o *OrderedPipeline[T], key Function[T, K]) *OrderedPipeline[T] {
	return thenBy(o, key, DefaultComparer[K], 1)
}

// ThenByFunc is like ThenBy, but uses cmp to compare keys.
func ThenByFunc[T any, K any](o *OrderedPipeline[T], key Function[T, K], cmp CompareFunc[K]) *OrderedPipeline[T] {
	return thenBy(o, key, cmp, 1)
}

// ThenByDescending returns an OrderedPipeline that sorts elements that are tied in o in descending order of
// their keys, using DefaultComparer to compare keys.
func ThenByDescending[T any, K any](o *OrderedPipeline[T], key Function[T, K]) *OrderedPipeline[T] {
	return thenBy(o, key, DefaultComparer[K], -1)
}

// ThenByDescendingFunc is like ThenByDescending, but uses cmp to compare keys.
func ThenByDescendingFunc[T any, K any](o *OrderedPipeline[T], key Function[T, K], cmp CompareFunc[K]) *OrderedPipeline[T] {
	return thenBy(o, key, cmp, -1)
}

// Order returns an OrderedPipeline that produces the elements of p in ascending order, using
// DefaultComparer to compare them.
func (p *Pipeline[T]) Order() *OrderedPipeline[T] {
	return newOrdered(p, nil, Identity[T], DefaultComparer[T], 1)
}

// OrderDescending returns an OrderedPipeline that produces the elements of p in descending order,
// using DefaultComparer to compare them.
func (p *Pipeline[T]) OrderDescending() *OrderedPipeline[T] {
	return newOrdered(p, nil, Identity[T], DefaultComparer[T], -1)
}

func thenBy[T any, K any](o *OrderedPipeline[T], key Function[T, K], cmp CompareFunc[K], order int) *OrderedPipeline[T] {
	if o == nil || o.Pipeline == nil {
		panic(&ArgumentError{Op: "ThenBy", Name: "o", Reason: "must be a non-nil OrderedPipeline"})
	}

	return newOrdered(o.Pipeline, o, key, cmp, order)
}

// newOrdered returns an OrderedPipeline that adds one criterion to parent, or sorts upstream by
// that criterion alone if parent is nil.
func newOrdered[T any, K any](upstream *Pipeline[T], parent *OrderedPipeline[T], key Function[T, K], cmp CompareFunc[K], order int) *OrderedPipeline[T] {
	mustPipeline("OrderBy", "p", upstream)
	mustFunc("OrderBy", "key", key)
	mustFunc("OrderBy", "cmp", cmp)

	o := &OrderedPipeline[T]{
		parent:   parent,
		upstream: upstream,
		crit: criterion[T]{
			keys: func(elems []T) CompareFunc[int] {
				keys := make([]K, len(elems))
				for i, elem := range elems {
					keys[i] = key(elem)
				}

				return func(i int, j int) int {
					return cmp(keys[i], keys[j])
				}
			},
			order: order,
		},
	}

	o.Pipeline = newPipeline(o.sorted)

	return o
}

// source returns the unordered Pipeline at the root of the chain.
func (o *OrderedPipeline[T]) source() *Pipeline[T] {
	for o.parent != nil {
		o = o.parent
	}

	return o.upstream
}

// criteria returns the criteria of the chain, primary key first.
func (o *OrderedPipeline[T]) criteria() []criterion[T] {
	crits := []criterion[T]{}
	for ; o != nil; o = o.parent {
		crits = append(crits, o.crit)
	}

	slices.Reverse(crits)

	return crits
}

// sorted returns a sequence of the elements of the source, sorted by all criteria of the chain.
func (o *OrderedPipeline[T]) sorted() iter.Seq[T] {
	return func(yield func(T) bool) {
		crits := o.criteria()
		elems := o.source().ToSlice()

		compares := make([]CompareFunc[int], len(crits))
		for i, crit := range crits {
			compares[i] = crit.keys(elems)
		}

		perm := make([]int, len(elems))
		for i := range perm {
			perm[i] = i
		}

		slices.SortStableFunc(perm, func(a int, b int) int {
			for i, compare := range compares {
				if c := crits[i].order * compare(a, b); c != 0 {
					return c
				}
			}

			return 0
		})

		for _, i := range perm {
			if !yield(elems[i]) {
				return
			}
		}
	}
}
