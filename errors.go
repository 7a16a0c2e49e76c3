package goseq

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidArgument is matched by an *ArgumentError: a required function argument is nil, or a
	// numeric argument is out of its permitted range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidSource is matched by a *SourceError: a Pipeline cannot be constructed from a value.
	ErrInvalidSource = errors.New("invalid source")

	// ErrNoMatch is returned when no element satisfies the condition of a First, Last, or Single
	// operation.
	ErrNoMatch = errors.New("no element satisfies the condition")

	// ErrMultipleMatch is returned when more than one element satisfies the condition of a Single
	// operation.
	ErrMultipleMatch = errors.New("more than one element satisfies the condition")

	// ErrEmptySequence is returned by aggregations that require at least one element.
	ErrEmptySequence = errors.New("sequence contains no elements")

	// ErrIndexOutOfRange is matched by an *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// An ArgumentError is the value passed to panic when an operation receives an invalid argument.
type ArgumentError struct {
	// Op is the operation that received the argument.
	Op string

	// Name is the name of the argument.
	Name string

	// Reason describes what is wrong with the argument.
	Reason string
}

// A SourceError is returned by From when a value cannot be adapted into a Pipeline.
type SourceError struct {
	// Value is the value that was passed to From.
	Value any
}

// An IndexError is returned by ElementAt when the index lies beyond the end of the sequence.
type IndexError struct {
	// Index is the requested index.
	Index int

	// Length is the number of elements that were available.
	Length int
}

// A DuplicateKeyError is returned by ToMapNoDuplicateKeys to indicate that
// a key could not be added to a map because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// Error implements error.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Op, e.Name, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Error implements error.
func (e *SourceError) Error() string {
	return fmt.Sprintf("invalid source of type %T", e.Value)
}

// Is reports whether target is ErrInvalidSource.
func (e *SourceError) Is(target error) bool {
	return target == ErrInvalidSource
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0:%d]", e.Index, e.Length)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return fmt.Sprintf("duplicate key %v", e.Key)
}

// mustFunc panics with an *ArgumentError if fn is nil.
func mustFunc(op string, name string, fn any) {
	if v := reflect.ValueOf(fn); !v.IsValid() || (v.Kind() == reflect.Func && v.IsNil()) {
		panic(&ArgumentError{Op: op, Name: name, Reason: "must be a non-nil function"})
	}
}

// mustCount panics with an *ArgumentError if n is negative.
func mustCount(op string, name string, n int) {
	if n < 0 {
		panic(&ArgumentError{Op: op, Name: name, Reason: fmt.Sprintf("must be a non-negative integer (got %d)", n)})
	}
}

// mustPipeline panics with an *ArgumentError if p is nil.
func mustPipeline[T any](op string, name string, p *Pipeline[T]) {
	if p == nil || p.rule == nil {
		panic(&ArgumentError{Op: op, Name: name, Reason: "must be a non-nil Pipeline"})
	}
}
