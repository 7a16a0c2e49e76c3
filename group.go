package goseq

import "iter"

// An EqualityGroup maps keys to lists of values, preserving the order in which distinct keys were
// first added, and the order of values within each key.
//
// If an EqualityGroup is created with an EqualFunc, every lookup scans the stored keys in insertion
// order and uses the first key that eq reports equal. Otherwise keys are matched using native
// equality: keys whose dynamic value is comparable are looked up in a hashed index, and all
// other keys are matched structurally using DefaultEquality.
//
// An EqualityGroup is not safe for concurrent use.
type EqualityGroup[K any, V any] struct {
	eq     EqualFunc[K]
	def    []V
	keys   []K
	values [][]V
	index  map[any]int

	// positions of stored keys that are not hashable
	unhashed []int
}

// NewEqualityGroup returns a new, empty EqualityGroup.
// eq may be nil to use native equality. def is returned by Get for keys that have no group.
func NewEqualityGroup[K any, V any](eq EqualFunc[K], def []V) *EqualityGroup[K, V] {
	return &EqualityGroup[K, V]{
		eq:    eq,
		def:   def,
		index: map[any]int{},
	}
}

// Set appends value to the group of key, creating the group if it does not exist yet.
func (g *EqualityGroup[K, V]) Set(key K, value V) {
	if pos, ok := g.lookup(key); ok {
		g.values[pos] = append(g.values[pos], value)
		return
	}

	pos := len(g.keys)

	g.keys = append(g.keys, key)
	g.values = append(g.values, []V{value})

	if g.eq != nil {
		return
	}

	if hashable(any(key)) {
		g.index[any(key)] = pos
	} else {
		g.unhashed = append(g.unhashed, pos)
	}
}

// Get returns the values of the group of key, or the default values if there is no such group.
// The returned slice is shared with g and with other callers of Get; it must not be modified.
func (g *EqualityGroup[K, V]) Get(key K) []V {
	if pos, ok := g.lookup(key); ok {
		return g.values[pos]
	}

	return g.def
}

// Has returns true if there is a group for key.
func (g *EqualityGroup[K, V]) Has(key K) bool {
	_, ok := g.lookup(key)
	return ok
}

// Key returns the representative key stored for key, that is, the first key added that matched key.
func (g *EqualityGroup[K, V]) Key(key K) (K, bool) {
	if pos, ok := g.lookup(key); ok {
		return g.keys[pos], true
	}

	var zero K
	return zero, false
}

// Len returns the number of groups.
func (g *EqualityGroup[K, V]) Len() int {
	return len(g.keys)
}

// Keys returns a sequence of the representative keys, in first-insertion order.
func (g *EqualityGroup[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, key := range g.keys {
			if !yield(key) {
				return
			}
		}
	}
}

// All returns a sequence of the representative keys and their values, in first-insertion order.
func (g *EqualityGroup[K, V]) All() iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		for pos, key := range g.keys {
			if !yield(key, g.values[pos]) {
				return
			}
		}
	}
}

// lookup returns the position of the stored key matching key.
func (g *EqualityGroup[K, V]) lookup(key K) (int, bool) {
	if g.eq != nil {
		for pos, stored := range g.keys {
			if g.eq(key, stored) {
				return pos, true
			}
		}

		return 0, false
	}

	if hashable(any(key)) {
		pos, ok := g.index[any(key)]
		return pos, ok
	}

	for _, pos := range g.unhashed {
		if DefaultEquality(key, g.keys[pos]) {
			return pos, true
		}
	}

	return 0, false
}
