package goseq

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestForEach(t *testing.T) {
	is := is.New(t)

	sum := 0

	Of(1, 2, 3).ForEach(func(elem int, index int) {
		is.Equal(index, elem-1)

		sum += elem
	})

	is.Equal(sum, 6)
}

func TestAggregate(t *testing.T) {
	is := is.New(t)

	words := Of("the", "quick", "brown", "fox")

	calls := []int{}

	reversed, err := words.Aggregate(func(acc string, elem string, index int) string {
		calls = append(calls, index)

		return elem + " " + acc
	})

	is.NoErr(err)
	is.Equal(reversed, "fox brown quick the")
	is.Equal(calls, []int{0, 1, 2})
}

func TestAggregate_Empty(t *testing.T) {
	is := is.New(t)

	_, err := Empty[int]().Aggregate(func(acc int, elem int, _ int) int {
		return acc + elem
	})

	is.True(errors.Is(err, ErrEmptySequence))
}

func TestAggregateSeed(t *testing.T) {
	is := is.New(t)

	ints := Of(4, 8, 8, 3, 9, 0, 7, 8, 2)

	evens := AggregateSeed(ints, 0, func(acc int, elem int, _ int) int {
		if elem%2 == 0 {
			return acc + 1
		}

		return acc
	})

	is.Equal(evens, 6)
	is.Equal(AggregateSeed(Empty[int](), 42, func(acc int, _ int, _ int) int { return acc }), 42)
}

func TestAggregateSelect(t *testing.T) {
	is := is.New(t)

	fruits := Of("apple", "mango", "orange", "passionfruit", "grape")

	longest := AggregateSelect(fruits, "banana",
		func(acc string, elem string, _ int) string {
			if len(elem) > len(acc) {
				return elem
			}

			return acc
		},
		func(acc string) int {
			return len(acc)
		})

	is.Equal(longest, 12)
}

func TestAny(t *testing.T) {
	is := is.New(t)

	is.True(Of(1).Any())
	is.True(!Empty[int]().Any())
}

func TestAnyMatch(t *testing.T) {
	is := is.New(t)

	calls := 0

	found := Of(1, 2, 3, 4).AnyMatch(func(elem int) bool {
		calls++
		return elem == 2
	})

	is.True(found)
	is.Equal(calls, 2)
	is.True(!Of(1, 3).AnyMatch(func(elem int) bool { return elem == 2 }))
}

func TestAllMatch(t *testing.T) {
	is := is.New(t)

	calls := 0

	all := Of(1, 2, 3, 4).AllMatch(func(elem int) bool {
		calls++
		return elem < 2
	})

	is.True(!all)
	is.Equal(calls, 2)
	is.True(Empty[int]().AllMatch(func(int) bool { return false }))
}

func TestCount(t *testing.T) {
	is := is.New(t)

	is.Equal(Of(1, 2, 3).Count(), 3)
	is.Equal(Empty[int]().Count(), 0)
	is.Equal(Range(0, 10).CountFunc(func(elem int) bool { return elem%3 == 0 }), 4)
}

func TestContains(t *testing.T) {
	is := is.New(t)

	is.True(Of("a", "b").Contains("b"))
	is.True(!Of("a", "b").Contains("c"))
	is.True(Of([]int{1}, []int{2}).Contains([]int{2}))
}

func TestContainsFunc(t *testing.T) {
	is := is.New(t)

	byLength := func(a string, b string) bool {
		return len(a) == len(b)
	}

	is.True(Of("apple", "kiwi").ContainsFunc("pear", byLength))
}

func TestSequenceEqual(t *testing.T) {
	is := is.New(t)

	is.True(Of(1, 2, 3).SequenceEqual(Range(1, 3)))
	is.True(!Of(1, 2, 3).SequenceEqual(Of(1, 2)))
	is.True(!Of(1, 2).SequenceEqual(Of(1, 2, 3)))
	is.True(!Of(1, 2, 4).SequenceEqual(Of(1, 2, 3)))
	is.True(Empty[int]().SequenceEqual(Empty[int]()))
}

func TestSequenceEqualFunc(t *testing.T) {
	is := is.New(t)

	sameParity := func(a int, b int) bool {
		return a%2 == b%2
	}

	is.True(Of(1, 2, 3).SequenceEqualFunc(Of(5, 6, 7), sameParity))
}

func TestElementAt(t *testing.T) {
	is := is.New(t)

	names := Of("Hartono", "Adams", "Andersen")

	name, err := names.ElementAt(1)
	is.NoErr(err)
	is.Equal(name, "Adams")

	_, err = names.ElementAt(3)
	is.True(errors.Is(err, ErrIndexOutOfRange))

	var indexErr *IndexError
	is.True(errors.As(err, &indexErr))
	is.Equal(indexErr.Length, 3)

	is.Equal(names.ElementAtOrDefault(5, "none"), "none")

	assertArgumentPanic(t, func() {
		_, _ = names.ElementAt(-1)
	})
}

func TestFirst(t *testing.T) {
	is := is.New(t)

	ints := Of(9, 34, 65, 92, 87, 435, 3, 54)

	first, err := ints.First()
	is.NoErr(err)
	is.Equal(first, 9)

	big, err := ints.FirstFunc(func(elem int) bool { return elem > 80 })
	is.NoErr(err)
	is.Equal(big, 92)

	_, err = ints.FirstFunc(func(elem int) bool { return elem > 1000 })
	is.True(errors.Is(err, ErrNoMatch))

	_, err = Empty[int]().First()
	is.True(errors.Is(err, ErrNoMatch))

	is.Equal(Empty[int]().FirstOrDefault(-1), -1)
	is.Equal(ints.FirstOrDefaultFunc(func(elem int) bool { return elem > 1000 }, -1), -1)
}

func TestLast(t *testing.T) {
	is := is.New(t)

	ints := Of(9, 34, 65, 92, 87, 435, 3, 54)

	last, err := ints.Last()
	is.NoErr(err)
	is.Equal(last, 54)

	big, err := ints.LastFunc(func(elem int) bool { return elem > 80 })
	is.NoErr(err)
	is.Equal(big, 435)

	_, err = Empty[int]().Last()
	is.True(errors.Is(err, ErrNoMatch))

	is.Equal(Empty[int]().LastOrDefault(-1), -1)
	is.Equal(ints.LastOrDefaultFunc(func(elem int) bool { return elem < 0 }, -1), -1)
}

func TestSingle(t *testing.T) {
	is := is.New(t)

	only, err := Of("orange").Single()
	is.NoErr(err)
	is.Equal(only, "orange")

	_, err = Of("orange", "apple").Single()
	is.True(errors.Is(err, ErrMultipleMatch))

	_, err = Empty[string]().Single()
	is.True(errors.Is(err, ErrNoMatch))
}

func TestSingleFunc_StopsAtSecondMatch(t *testing.T) {
	is := is.New(t)

	pulled := 0

	ints := Of(1, 2, 3, 4, 5).Peek(func(int, int) {
		pulled++
	})

	_, err := ints.SingleFunc(func(elem int) bool { return elem > 1 })
	is.True(errors.Is(err, ErrMultipleMatch))
	is.Equal(pulled, 3)
}

func TestSingleOrDefault(t *testing.T) {
	is := is.New(t)

	elem, err := Empty[string]().SingleOrDefault("none")
	is.NoErr(err)
	is.Equal(elem, "none")

	elem, err = Of("a", "bb").SingleOrDefaultFunc(func(elem string) bool { return len(elem) == 2 }, "none")
	is.NoErr(err)
	is.Equal(elem, "bb")

	_, err = Of("a", "b").SingleOrDefault("none")
	is.True(errors.Is(err, ErrMultipleMatch))
}
