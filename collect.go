package goseq

// ToSlice returns the elements produced by p, in order.
func (p *Pipeline[T]) ToSlice() []T {
	mustPipeline("ToSlice", "p", p)

	result := []T{}
	for elem := range p.All() {
		result = append(result, elem)
	}

	return result
}

// ToMap collects the elements produced by p into a map.
// Elements are mapped using key and value, respectively.
// If a key is produced more than once, the map entry will be overwritten.
func ToMap[T any, K comparable, V any](p *Pipeline[T], key Function[T, K], value Function[T, V]) map[K]V {
	mustPipeline("ToMap", "p", p)
	mustFunc("ToMap", "key", key)
	mustFunc("ToMap", "value", value)

	result := map[K]V{}
	for elem := range p.All() {
		result[key(elem)] = value(elem)
	}

	return result
}

// ToMapNoDuplicateKeys collects the elements produced by p into a map.
// Elements are mapped using key and value, respectively.
// If a key is produced more than once, it returns the map collected so far, and a *DuplicateKeyError.
func ToMapNoDuplicateKeys[T any, K comparable, V any](p *Pipeline[T], key Function[T, K], value Function[T, V]) (map[K]V, error) {
	mustPipeline("ToMapNoDuplicateKeys", "p", p)
	mustFunc("ToMapNoDuplicateKeys", "key", key)
	mustFunc("ToMapNoDuplicateKeys", "value", value)

	result := map[K]V{}

	for elem := range p.All() {
		k := key(elem)

		if _, ok := result[k]; ok {
			return result, &DuplicateKeyError[T, K]{
				Element: elem,
				Key:     k,
			}
		}

		result[k] = value(elem)
	}

	return result, nil
}

// ToLookup collects the elements produced by p into an EqualityGroup, grouped by key.
// If eq is nil, keys are compared using native equality.
// Looking up a key without elements returns an empty slice. Slices returned by the lookup are shared
// and must not be modified.
func ToLookup[T any, K any](p *Pipeline[T], key Function[T, K], eq EqualFunc[K]) *EqualityGroup[K, T] {
	mustPipeline("ToLookup", "p", p)
	mustFunc("ToLookup", "key", key)

	lookup := NewEqualityGroup[K, T](eq, []T{})
	for elem := range p.All() {
		lookup.Set(key(elem), elem)
	}

	return lookup
}

// Partition collects the elements produced by p into two slices, holding the elements for which pred
// returns true and false, respectively.
func (p *Pipeline[T]) Partition(pred MatchFunc[T]) ([]T, []T) {
	mustPipeline("Partition", "p", p)
	mustFunc("Partition", "pred", pred)

	matched := []T{}
	unmatched := []T{}

	for elem := range p.All() {
		if pred(elem) {
			matched = append(matched, elem)
		} else {
			unmatched = append(unmatched, elem)
		}
	}

	return matched, unmatched
}
