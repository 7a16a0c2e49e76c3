package goseq

import "iter"

// TraverseBreadthFirst returns a Pipeline that walks the trees rooted at the elements of p in level
// order: first all elements of p, then all of their children, then all of their grandchildren, and
// so on. children returns the children of an element, or nil (or a nil *Pipeline) if it has none.
func (p *Pipeline[T]) TraverseBreadthFirst(children Function[T, Iterable[T]]) *Pipeline[T] {
	mustPipeline("TraverseBreadthFirst", "p", p)

	return TraverseBreadthFirstFunc(p, children, func(elem T, _ int) T {
		return elem
	})
}

// TraverseBreadthFirstFunc is like TraverseBreadthFirst, but produces the result of calling result with
// each element and its level, where the elements of p are at level 0.
func TraverseBreadthFirstFunc[T any, R any](p *Pipeline[T], children Function[T, Iterable[T]], result func(elem T, level int) R) *Pipeline[R] {
	mustPipeline("TraverseBreadthFirst", "p", p)
	mustFunc("TraverseBreadthFirst", "children", children)
	mustFunc("TraverseBreadthFirst", "result", result)

	type pending struct {
		seq   Iterable[T]
		level int
	}

	return newPipeline(func() iter.Seq[R] {
		return func(yield func(R) bool) {
			queue := []pending{{seq: p, level: 0}}

			for len(queue) > 0 {
				current := queue[0]
				queue = queue[1:]

				for elem := range current.seq.All() {
					if !yield(result(elem, current.level)) {
						return
					}

					if next := children(elem); !isNil(next) {
						queue = append(queue, pending{seq: next, level: current.level + 1})
					}
				}
			}
		}
	})
}

// TraverseDepthFirst returns a Pipeline that walks the trees rooted at the elements of p in pre-order:
// every element is followed by its descendants before its next sibling. children returns the
// children of an element, or nil (or a nil *Pipeline) if it has none.
func (p *Pipeline[T]) TraverseDepthFirst(children Function[T, Iterable[T]]) *Pipeline[T] {
	mustPipeline("TraverseDepthFirst", "p", p)

	return TraverseDepthFirstFunc(p, children, func(elem T, _ int) T {
		return elem
	})
}

// TraverseDepthFirstFunc is like TraverseDepthFirst, but produces the result of calling result with
// each element and its depth, where the elements of p are at depth 0.
func TraverseDepthFirstFunc[T any, R any](p *Pipeline[T], children Function[T, Iterable[T]], result func(elem T, level int) R) *Pipeline[R] {
	mustPipeline("TraverseDepthFirst", "p", p)
	mustFunc("TraverseDepthFirst", "children", children)
	mustFunc("TraverseDepthFirst", "result", result)

	type cursor struct {
		next func() (T, bool)
		stop func()
	}

	return newPipeline(func() iter.Seq[R] {
		return func(yield func(R) bool) {
			next, stop := iter.Pull(p.All())
			stack := []cursor{{next: next, stop: stop}}

			defer func() {
				for _, c := range stack {
					c.stop()
				}
			}()

			for len(stack) > 0 {
				level := len(stack) - 1

				elem, ok := stack[level].next()
				if !ok {
					stack[level].stop()
					stack = stack[:level]

					continue
				}

				if !yield(result(elem, level)) {
					return
				}

				if kids := children(elem); !isNil(kids) {
					next, stop := iter.Pull(kids.All())
					stack = append(stack, cursor{next: next, stop: stop})
				}
			}
		}
	})
}
