package goseq

// window is a range of indexes searched by IndexOf and its variants.
type window struct {
	start    int
	count    int
	hasStart bool
	hasCount bool
}

// IndexOf returns the index of the first element produced by p that is equal to value, using
// DefaultEquality, or -1 if there is no such element.
// bounds optionally restricts the search to the elements from index bounds[0], and to no more than
// bounds[1] elements.
func (p *Pipeline[T]) IndexOf(value T, bounds ...int) int {
	mustPipeline("IndexOf", "p", p)

	return p.findIndex("IndexOf", equalTo(value), bounds)
}

// FindIndex returns the index of the first element produced by p for which pred returns true, or -1
// if there is no such element. The index passed to pred is the index of elem.
// bounds optionally restricts the search to the elements from index bounds[0], and to no more than
// bounds[1] elements.
func (p *Pipeline[T]) FindIndex(pred PredicateFunc[T], bounds ...int) int {
	mustPipeline("FindIndex", "p", p)
	mustFunc("FindIndex", "pred", pred)

	return p.findIndex("FindIndex", pred, bounds)
}

// LastIndexOf returns the index of the last element produced by p that is equal to value, using
// DefaultEquality, or -1 if there is no such element.
// bounds optionally restricts the search to the elements up to and including index bounds[0], and
// to no more than bounds[1] elements ending there.
func (p *Pipeline[T]) LastIndexOf(value T, bounds ...int) int {
	mustPipeline("LastIndexOf", "p", p)

	return p.findLastIndex("LastIndexOf", equalTo(value), bounds)
}

// FindLastIndex returns the index of the last element produced by p for which pred returns true, or
// -1 if there is no such element. The index passed to pred is the index of elem.
// bounds optionally restricts the search to the elements up to and including index bounds[0], and
// to no more than bounds[1] elements ending there.
func (p *Pipeline[T]) FindLastIndex(pred PredicateFunc[T], bounds ...int) int {
	mustPipeline("FindLastIndex", "p", p)
	mustFunc("FindLastIndex", "pred", pred)

	return p.findLastIndex("FindLastIndex", pred, bounds)
}

func (p *Pipeline[T]) findIndex(op string, pred PredicateFunc[T], bounds []int) int {
	w := parseWindow(op, bounds)

	for index, elem := range p.Indexed() {
		if index < w.start {
			continue
		}

		if w.hasCount && index-w.start >= w.count {
			break
		}

		if pred(elem, index) {
			return index
		}
	}

	return -1
}

func (p *Pipeline[T]) findLastIndex(op string, pred PredicateFunc[T], bounds []int) int {
	w := parseWindow(op, bounds)

	found := -1

	for index, elem := range p.Indexed() {
		if w.hasStart && index > w.start {
			break
		}

		if w.hasCount && w.start-index >= w.count {
			continue
		}

		if pred(elem, index) {
			found = index
		}
	}

	return found
}

// parseWindow returns the window described by bounds, panicking with an *ArgumentError if bounds
// are invalid.
func parseWindow(op string, bounds []int) window {
	w := window{}

	switch len(bounds) {
	case 0:

	case 2:
		mustCount(op, "count", bounds[1])
		w.count = bounds[1]
		w.hasCount = true

		fallthrough

	case 1:
		mustCount(op, "start", bounds[0])
		w.start = bounds[0]
		w.hasStart = true

	default:
		panic(&ArgumentError{Op: op, Name: "bounds", Reason: "must hold at most a start index and a count"})
	}

	return w
}

// equalTo returns a predicate that matches elements equal to value, using DefaultEquality.
func equalTo[T any](value T) PredicateFunc[T] {
	return func(elem T, _ int) bool {
		return DefaultEquality(elem, value)
	}
}
