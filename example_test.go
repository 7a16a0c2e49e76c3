package goseq

import (
	"fmt"
	"strconv"
)

func Example() {
	// construct a pipeline from a slice
	ints := FromSlice([]int{5, 3, 1, 4, 2})

	// keep only odd elements
	// since we only need the elements themselves, we can use FuncPredicate
	odd := ints.Where(FuncPredicate(func(elem int) bool {
		return elem%2 == 1
	}))

	// map elements by converting them to strings
	// nothing has been evaluated up to this point
	strs := Select(odd.Order().Pipeline, FuncMapper(strconv.Itoa))

	fmt.Printf("%+v\n", strs.ToSlice())
	// Output: [1 3 5]
}

func ExampleGroupBy() {
	type pet struct {
		name string
		age  int
	}

	pets := Of(
		pet{name: "Barley", age: 8},
		pet{name: "Boots", age: 4},
		pet{name: "Whiskers", age: 1},
		pet{name: "Daisy", age: 4},
	)

	groups := GroupByFunc(pets,
		func(p pet) int { return p.age },
		func(p pet) string { return p.name },
		Pair[int, []string],
		nil)

	for group := range groups.All() {
		fmt.Println(group.Key, group.Value)
	}
	// Output:
	// 8 [Barley]
	// 4 [Boots Daisy]
	// 1 [Whiskers]
}

func ExampleThenBy() {
	fruits := Of("grape", "passionfruit", "banana", "mango", "orange", "raspberry", "apple", "blueberry")

	byLength := OrderBy(fruits, func(fruit string) int {
		return len(fruit)
	})

	sorted := ThenBy(byLength, Identity[string])

	fmt.Println(sorted.ToSlice())
	// Output: [apple grape mango banana orange blueberry raspberry passionfruit]
}
