package goseq

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestToSlice(t *testing.T) {
	is := is.New(t)

	is.Equal(Of(1, 2, 3).ToSlice(), []int{1, 2, 3})
	is.Equal(Empty[int]().ToSlice(), []int{})
}

func TestToMap(t *testing.T) {
	is := is.New(t)

	ints := Of(1, 2, 3, 1)

	result := ToMap(ints, Identity[int], strconv.Itoa)

	is.Equal(result, map[int]string{1: "1", 2: "2", 3: "3"})
}

func TestToMapNoDuplicateKeys(t *testing.T) {
	is := is.New(t)

	result, err := ToMapNoDuplicateKeys(Of(1, 2, 3), Identity[int], strconv.Itoa)
	is.NoErr(err)
	is.Equal(result, map[int]string{1: "1", 2: "2", 3: "3"})
}

func TestToMapNoDuplicateKeys_Duplicate(t *testing.T) {
	is := is.New(t)

	words := Of("apple", "avocado", "banana")

	result, err := ToMapNoDuplicateKeys(words, func(word string) byte {
		return word[0]
	}, Identity[string])

	var dupErr *DuplicateKeyError[string, byte]
	is.True(errors.As(err, &dupErr))
	is.Equal(dupErr.Element, "avocado")
	is.Equal(dupErr.Key, byte('a'))
	is.Equal(result, map[byte]string{'a': "apple"})
}

func TestToLookup(t *testing.T) {
	is := is.New(t)

	words := Of("apple", "Avocado", "banana", "cherry", "blueberry")

	lookup := ToLookup(words, func(word string) string {
		return word[:1]
	}, strings.EqualFold)

	is.Equal(lookup.Len(), 3)
	is.Equal(lookup.Get("A"), []string{"apple", "Avocado"})
	is.Equal(lookup.Get("b"), []string{"banana", "blueberry"})
	is.Equal(lookup.Get("z"), []string{})

	key, ok := lookup.Key("A")
	is.True(ok)
	is.Equal(key, "a")
}

func TestPartition(t *testing.T) {
	is := is.New(t)

	even, odd := Range(1, 6).Partition(func(elem int) bool {
		return elem%2 == 0
	})

	is.Equal(even, []int{2, 4, 6})
	is.Equal(odd, []int{1, 3, 5})
}
