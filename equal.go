package goseq

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

var structural = cmp.Exporter(func(reflect.Type) bool {
	return true
})

// DefaultEquality reports whether a and b are equal.
// Values whose dynamic type is comparable are compared using ==. All other values, such as slices,
// maps, or structs holding them, are compared structurally.
func DefaultEquality[T any](a T, b T) bool {
	x, y := any(a), any(b)

	if hashable(x) && hashable(y) {
		return x == y
	}

	return cmp.Equal(x, y, structural)
}

// hashable returns true if v can be used as a map key.
func hashable(v any) bool {
	if v == nil {
		return true
	}

	return reflect.ValueOf(v).Comparable()
}
