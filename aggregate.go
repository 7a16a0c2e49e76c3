package goseq

import "golang.org/x/exp/constraints"

// Number is a constraint that permits any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of the elements produced by p, or zero if p produces no elements.
func Sum[N Number](p *Pipeline[N]) N {
	mustPipeline("Sum", "p", p)

	return SumFunc(p, Identity[N])
}

// SumFunc returns the sum of the results of calling value for each element produced by p.
func SumFunc[T any, N Number](p *Pipeline[T], value Function[T, N]) N {
	mustPipeline("Sum", "p", p)
	mustFunc("Sum", "value", value)

	var sum N
	for elem := range p.All() {
		sum += value(elem)
	}

	return sum
}

// Average returns the arithmetic mean of the elements produced by p.
// If p produces no elements, it returns ErrEmptySequence.
func Average[N Number](p *Pipeline[N]) (float64, error) {
	mustPipeline("Average", "p", p)

	return AverageFunc(p, Identity[N])
}

// AverageFunc returns the arithmetic mean of the results of calling value for each element produced by p.
// If p produces no elements, it returns ErrEmptySequence.
func AverageFunc[T any, N Number](p *Pipeline[T], value Function[T, N]) (float64, error) {
	mustPipeline("Average", "p", p)
	mustFunc("Average", "value", value)

	sum := 0.0
	count := 0

	for elem := range p.All() {
		sum += float64(value(elem))
		count++
	}

	if count == 0 {
		return 0, ErrEmptySequence
	}

	return sum / float64(count), nil
}

// Min returns the smallest element produced by p.
// If p produces no elements, it returns ErrEmptySequence.
func Min[O constraints.Ordered](p *Pipeline[O]) (O, error) {
	mustPipeline("Min", "p", p)

	return MinFunc(p, Identity[O])
}

// MinFunc returns the smallest result of calling value for each element produced by p.
// If p produces no elements, it returns ErrEmptySequence.
func MinFunc[T any, O constraints.Ordered](p *Pipeline[T], value Function[T, O]) (O, error) {
	mustPipeline("Min", "p", p)
	mustFunc("Min", "value", value)

	return extreme(p, value, func(a O, b O) O {
		return min(a, b)
	})
}

// Max returns the largest element produced by p.
// If p produces no elements, it returns ErrEmptySequence.
func Max[O constraints.Ordered](p *Pipeline[O]) (O, error) {
	mustPipeline("Max", "p", p)

	return MaxFunc(p, Identity[O])
}

// MaxFunc returns the largest result of calling value for each element produced by p.
// If p produces no elements, it returns ErrEmptySequence.
func MaxFunc[T any, O constraints.Ordered](p *Pipeline[T], value Function[T, O]) (O, error) {
	mustPipeline("Max", "p", p)
	mustFunc("Max", "value", value)

	return extreme(p, value, func(a O, b O) O {
		return max(a, b)
	})
}

// MinElement returns the element produced by p with the smallest key.
// If several elements share the smallest key, the first of them is returned.
// If p produces no elements, it returns ErrEmptySequence.
func MinElement[T any, O constraints.Ordered](p *Pipeline[T], key Function[T, O]) (T, error) {
	mustPipeline("MinElement", "p", p)
	mustFunc("MinElement", "key", key)

	return extremeElement(p, key, func(a O, b O) bool {
		return a < b
	})
}

// MaxElement returns the element produced by p with the largest key.
// If several elements share the largest key, the first of them is returned.
// If p produces no elements, it returns ErrEmptySequence.
func MaxElement[T any, O constraints.Ordered](p *Pipeline[T], key Function[T, O]) (T, error) {
	mustPipeline("MaxElement", "p", p)
	mustFunc("MaxElement", "key", key)

	return extremeElement(p, key, func(a O, b O) bool {
		return a > b
	})
}

func extreme[T any, O constraints.Ordered](p *Pipeline[T], value Function[T, O], pick func(a O, b O) O) (O, error) {
	var result O

	found := false

	for elem := range p.All() {
		v := value(elem)

		if !found {
			result = v
			found = true

			continue
		}

		result = pick(result, v)
	}

	if !found {
		return result, ErrEmptySequence
	}

	return result, nil
}

func extremeElement[T any, O constraints.Ordered](p *Pipeline[T], key Function[T, O], better func(a O, b O) bool) (T, error) {
	var (
		result T
		best   O
	)

	found := false

	for elem := range p.All() {
		k := key(elem)

		if !found || better(k, best) {
			result = elem
			best = k
			found = true
		}
	}

	if !found {
		return result, ErrEmptySequence
	}

	return result, nil
}
