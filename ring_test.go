package goseq

import (
	"testing"

	"github.com/matryer/is"
)

func TestRing(t *testing.T) {
	is := is.New(t)

	r := newRing[int](2)

	_, evicted := r.push(1)
	is.True(!evicted)

	_, evicted = r.push(2)
	is.True(!evicted)

	old, evicted := r.push(3)
	is.True(evicted)
	is.Equal(old, 1)

	is.Equal(FromSeq(r.all()).ToSlice(), []int{2, 3})
}

func TestRing_Empty(t *testing.T) {
	is := is.New(t)

	r := newRing[int](0)

	old, evicted := r.push(1)
	is.True(evicted)
	is.Equal(old, 1)
	is.Equal(FromSeq(r.all()).ToSlice(), []int{})
}
