package goseq

import (
	"context"
	"iter"
	"reflect"
	"unicode/utf8"
)

// From returns a Pipeline that produces the elements of src.
//
// src may be a []T, any other slice or array whose elements are assignable to T, a string (producing
// runes if T is rune, or one-character strings otherwise), an iter.Seq[T], a func(func(T) bool), a
// generator function of type func() iter.Seq[T], an Iterable[T] (including *Pipeline[T]), or a
// channel of T. Channels are single-use: iterating the Pipeline a second time only produces the
// elements that have not been received yet.
//
// If src is nil or none of the above, From returns a *SourceError.
func From[T any](src any) (*Pipeline[T], error) {
	switch src := src.(type) {
	case nil:
		return nil, &SourceError{Value: src}

	case *Pipeline[T]:
		if src == nil || src.rule == nil {
			return nil, &SourceError{Value: src}
		}

		return src, nil

	case Iterable[T]:
		return newPipeline(src.All), nil

	case []T:
		return FromSlice(src), nil

	case iter.Seq[T]:
		if src == nil {
			return nil, &SourceError{Value: src}
		}

		return FromSeq(src), nil

	case func(func(T) bool):
		if src == nil {
			return nil, &SourceError{Value: src}
		}

		return FromSeq[T](src), nil

	case func() iter.Seq[T]:
		if src == nil {
			return nil, &SourceError{Value: src}
		}

		return FromFunc(src), nil

	case <-chan T:
		return FromChannel[T](context.Background(), src), nil

	case chan T:
		return FromChannel[T](context.Background(), src), nil

	case string:
		return fromString[T](src)
	}

	return fromReflect[T](src)
}

// Of returns a Pipeline that produces elems, in order.
func Of[T any](elems ...T) *Pipeline[T] {
	return FromSlice(elems)
}

// FromSlice returns a Pipeline that produces the elements of the given slices, in order.
// The slices are not copied.
func FromSlice[T any](slices ...[]T) *Pipeline[T] {
	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for _, slice := range slices {
				for _, elem := range slice {
					if !yield(elem) {
						return
					}
				}
			}
		}
	})
}

// FromString returns a Pipeline that produces the runes of s.
func FromString(s string) *Pipeline[rune] {
	return newPipeline(func() iter.Seq[rune] {
		return func(yield func(rune) bool) {
			for _, r := range s {
				if !yield(r) {
					return
				}
			}
		}
	})
}

// FromSeq returns a Pipeline that produces the elements of seq.
// The Pipeline is restartable if and only if seq is.
func FromSeq[T any](seq iter.Seq[T]) *Pipeline[T] {
	mustFunc("FromSeq", "seq", seq)

	return seqPipeline(seq)
}

// FromFunc returns a Pipeline that calls gen every time it is iterated, and produces the elements of
// the returned sequence.
func FromFunc[T any](gen func() iter.Seq[T]) *Pipeline[T] {
	mustFunc("FromFunc", "gen", gen)

	return newPipeline(gen)
}

// FromChannel returns a Pipeline that produces the elements received through the given channels, in order.
// The Pipeline stops producing elements when ctx is canceled.
// Channels are single-use: a second iteration only produces elements that have not been received yet.
func FromChannel[T any](ctx context.Context, channels ...<-chan T) *Pipeline[T] {
	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for _, ch := range channels {
				for {
					elem, ok := receive(ctx, ch)
					if !ok {
						if contextDone(ctx) {
							return
						}

						break
					}

					if !yield(elem) {
						return
					}
				}
			}
		}
	})
}

// Empty returns a Pipeline that produces no elements.
func Empty[T any]() *Pipeline[T] {
	return newPipeline(func() iter.Seq[T] {
		return func(func(T) bool) {}
	})
}

// Range returns a Pipeline that produces count consecutive integers, starting at start.
func Range(start int, count int) *Pipeline[int] {
	mustCount("Range", "count", count)

	return newPipeline(func() iter.Seq[int] {
		return func(yield func(int) bool) {
			for n := 0; n < count; n++ {
				if !yield(start + n) {
					return
				}
			}
		}
	})
}

// Repeat returns a Pipeline that produces elem count times.
func Repeat[T any](elem T, count int) *Pipeline[T] {
	mustCount("Repeat", "count", count)

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for i := 0; i < count; i++ {
				if !yield(elem) {
					return
				}
			}
		}
	})
}

// fromString returns a Pipeline that produces the characters of s as T.
func fromString[T any](s string) (*Pipeline[T], error) {
	if reflect.TypeFor[T]() == reflect.TypeFor[rune]() {
		return any(FromString(s)).(*Pipeline[T]), nil
	}

	if _, ok := any("").(T); !ok {
		return nil, &SourceError{Value: s}
	}

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			for i := 0; i < len(s); {
				_, size := utf8.DecodeRuneInString(s[i:])

				if !yield(any(s[i : i+size]).(T)) {
					return
				}

				i += size
			}
		}
	}), nil
}

// fromReflect returns a Pipeline that produces the elements of an array or slice whose element type
// is assignable to T.
func fromReflect[T any](src any) (*Pipeline[T], error) {
	v := reflect.ValueOf(src)

	switch v.Kind() {
	case reflect.Array, reflect.Slice:
		if !v.Type().Elem().AssignableTo(reflect.TypeFor[T]()) {
			return nil, &SourceError{Value: src}
		}

	default:
		return nil, &SourceError{Value: src}
	}

	return newPipeline(func() iter.Seq[T] {
		return func(yield func(T) bool) {
			var elem T

			dst := reflect.ValueOf(&elem).Elem()

			for i := 0; i < v.Len(); i++ {
				dst.Set(v.Index(i))

				if !yield(elem) {
					return
				}
			}
		}
	}), nil
}
