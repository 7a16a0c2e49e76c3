// Package goseq provides a set of deferred query operations on sequences of elements.
// Pipelines form a chain of operations that elements are pulled through.
//
// Pipelines are constructed from a production rule, which can produce elements from slices,
// strings, generator functions, iterators, channels, or any arbitrary source (see From).
//
// Elements may then be operated upon using filtering, projection, combination, joining, grouping,
// and ordering operations (which return new Pipelines). None of these operations modify their
// receiver, and none of them perform any work until the resulting Pipeline is iterated.
//
// Finally, the elements are consumed by terminal operations, such as collecting them into slices
// or maps, aggregating them, searching for elements, or simply ranging over Pipeline.All.
//
// Ordering is deferred as well: OrderBy followed by any number of ThenBy calls is evaluated as a
// single stable sort over all criteria when the ordered Pipeline is first iterated.
//
// Pipelines are always lazy and pull-based, meaning that an upstream production rule will produce a
// new element only after the downstream operation has asked for it. Re-iterating a Pipeline
// invokes its production rule again from scratch, which is only safe when the underlying source
// is restartable (slices, ranges, repeats); channels and other single-use sources yield their
// remaining elements only once.
//
// Passing a nil function, or a negative count, to an operation is a programming error and panics
// with an *ArgumentError. Terminal operations report data-dependent failures, such as an empty
// sequence or no matching element, as returned errors.
package goseq
