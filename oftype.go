package goseq

import (
	"iter"
	"reflect"
)

// Kind is a category of values recognized by OfKind.
type Kind int

const (
	// KindOther is any value not covered by the other kinds.
	KindOther Kind = iota

	// KindNumber is any integer or floating-point value.
	KindNumber

	// KindString is any string value.
	KindString

	// KindBool is any boolean value.
	KindBool

	// KindFunc is any function value.
	KindFunc

	// KindPipeline is a *Pipeline of any element type.
	KindPipeline
)

var kindNames = map[Kind]string{
	KindOther:    "other",
	KindNumber:   "number",
	KindString:   "string",
	KindBool:     "bool",
	KindFunc:     "func",
	KindPipeline: "pipeline",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// KindOf returns the Kind of v.
func KindOf(v any) Kind {
	if _, ok := v.(flattenable); ok {
		return KindPipeline
	}

	if v == nil {
		return KindOther
	}

	return kindOf(reflect.TypeOf(v).Kind())
}

func kindOf(k reflect.Kind) Kind {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber

	case reflect.String:
		return KindString

	case reflect.Bool:
		return KindBool

	case reflect.Func:
		return KindFunc

	default:
		return KindOther
	}
}

// OfKind returns a Pipeline that only produces the elements of p whose Kind is one of kinds.
func (p *Pipeline[T]) OfKind(kinds ...Kind) *Pipeline[T] {
	mustPipeline("OfKind", "p", p)

	return p.Where(func(elem T, _ int) bool {
		k := KindOf(elem)

		for _, want := range kinds {
			if k == want {
				return true
			}
		}

		return false
	})
}

// OfType returns a Pipeline that only produces the elements of p whose dynamic type is U, or
// implements U if U is an interface type.
func OfType[U any, T any](p *Pipeline[T]) *Pipeline[U] {
	mustPipeline("OfType", "p", p)

	return newPipeline(func() iter.Seq[U] {
		return func(yield func(U) bool) {
			for elem := range p.All() {
				u, ok := any(elem).(U)
				if !ok {
					continue
				}

				if !yield(u) {
					return
				}
			}
		}
	})
}
