package goseq

import (
	"cmp"
	"fmt"
	"reflect"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// MapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order produced by the upstream Pipeline.
type MapperFunc[T any, U any] func(elem T, index int) U

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem; see the individual operations for what it counts.
type PredicateFunc[T any] func(elem T, index int) bool

// MatchFunc returns true if elem matches a condition.
type MatchFunc[T any] func(elem T) bool

// EqualFunc returns true if a and b are considered equal.
type EqualFunc[T any] func(a T, b T) bool

// CompareFunc returns a negative number if a sorts before b, a positive number if a sorts after b,
// and zero if they are tied.
type CompareFunc[T any] func(a T, b T) int

// KeyValue is the default pairing of a key with a value, used by operations such as GroupBy and
// Join when no result selector is given.
type KeyValue[K any, V any] struct {
	Key   K
	Value V
}

// Pair returns a KeyValue holding key and value.
func Pair[K any, V any](key K, value V) KeyValue[K, V] {
	return KeyValue[K, V]{Key: key, Value: value}
}

// Identity returns elem.
func Identity[T any](elem T) T {
	return elem
}

// Always is a MatchFunc that matches every element.
func Always[T any](T) bool {
	return true
}

// FuncMapper returns a mapper that calls mapp for each element, ignoring the index.
func FuncMapper[T any, U any](mapp Function[T, U]) MapperFunc[T, U] {
	return func(elem T, _ int) U {
		return mapp(elem)
	}
}

// FuncPredicate returns a predicate that calls match for each element, ignoring the index.
func FuncPredicate[T any](match MatchFunc[T]) PredicateFunc[T] {
	return func(elem T, _ int) bool {
		return match(elem)
	}
}

var collators = sync.Pool{
	New: func() any {
		return collate.New(language.Und)
	},
}

// DefaultComparer orders strings by locale-aware collation, numbers numerically, booleans with
// false before true, and time.Time values chronologically. nil sorts before any other value.
// Values of any other type are ordered by their collated fmt.Sprint representation.
func DefaultComparer[T any](a T, b T) int {
	return compareAny(any(a), any(b))
}

func compareAny(a any, b any) int {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)

	switch {
	case !va.IsValid() && !vb.IsValid():
		return 0
	case !va.IsValid():
		return -1
	case !vb.IsValid():
		return 1
	}

	ka := kindOf(va.Kind())
	kb := kindOf(vb.Kind())

	switch {
	case ka == KindString && kb == KindString:
		return compareStrings(va.String(), vb.String())

	case ka == KindBool && kb == KindBool:
		return compareBools(va.Bool(), vb.Bool())

	case ka == KindNumber && kb == KindNumber:
		return compareNumbers(va, vb)
	}

	return compareStrings(fmt.Sprint(a), fmt.Sprint(b))
}

func compareStrings(a string, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)

	return c.CompareString(a, b)
}

func compareBools(a bool, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareNumbers(a reflect.Value, b reflect.Value) int {
	switch {
	case a.CanInt() && b.CanInt():
		return cmp.Compare(a.Int(), b.Int())

	case a.CanUint() && b.CanUint():
		return cmp.Compare(a.Uint(), b.Uint())
	}

	return cmp.Compare(toFloat(a), toFloat(b))
}

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
