package goseq

import (
	"strconv"
	"testing"

	"github.com/matryer/is"
)

type node struct {
	name     string
	children []*node
}

func tree() *node {
	return &node{name: "a", children: []*node{
		{name: "b", children: []*node{
			{name: "d"},
			{name: "e"},
		}},
		{name: "c", children: []*node{
			{name: "f"},
		}},
	}}
}

func nodeChildren(n *node) Iterable[*node] {
	if len(n.children) == 0 {
		return nil
	}

	return FromSlice(n.children)
}

func nodeLevel(n *node, level int) string {
	return n.name + strconv.Itoa(level)
}

func TestTraverseBreadthFirst(t *testing.T) {
	is := is.New(t)

	nodes := Of(tree()).TraverseBreadthFirst(nodeChildren)

	is.Equal(Select(nodes, FuncMapper(func(n *node) string { return n.name })).ToSlice(), []string{"a", "b", "c", "d", "e", "f"})
}

func TestTraverseBreadthFirstFunc(t *testing.T) {
	is := is.New(t)

	nodes := TraverseBreadthFirstFunc(Of(tree()), nodeChildren, nodeLevel)

	is.Equal(nodes.ToSlice(), []string{"a0", "b1", "c1", "d2", "e2", "f2"})
}

func TestTraverseDepthFirst(t *testing.T) {
	is := is.New(t)

	nodes := Of(tree()).TraverseDepthFirst(nodeChildren)

	is.Equal(Select(nodes, FuncMapper(func(n *node) string { return n.name })).ToSlice(), []string{"a", "b", "d", "e", "c", "f"})
}

func TestTraverseDepthFirstFunc(t *testing.T) {
	is := is.New(t)

	nodes := TraverseDepthFirstFunc(Of(tree()), nodeChildren, nodeLevel)

	is.Equal(nodes.ToSlice(), []string{"a0", "b1", "d2", "e2", "c1", "f2"})
	is.Equal(nodes.Take(3).ToSlice(), []string{"a0", "b1", "d2"})
}

func TestTraverse_Numbers(t *testing.T) {
	is := is.New(t)

	// children of n are 2n and 2n+1, up to 7
	children := func(n int) Iterable[int] {
		if n*2 > 7 {
			return nil
		}

		return Of(n*2, n*2+1)
	}

	is.Equal(Of(1).TraverseBreadthFirst(children).ToSlice(), []int{1, 2, 3, 4, 5, 6, 7})
	is.Equal(Of(1).TraverseDepthFirst(children).ToSlice(), []int{1, 2, 4, 5, 3, 6, 7})
}

type branch struct {
	name string
	kids *Pipeline[branch]
}

func branchKids(b branch) Iterable[branch] {
	return b.kids
}

func TestTraverse_NilPipelineChildren(t *testing.T) {
	is := is.New(t)

	root := branch{name: "root", kids: Of(branch{name: "leaf1"}, branch{name: "leaf2"})}

	depthFirst := Select(Of(root).TraverseDepthFirst(branchKids), FuncMapper(func(b branch) string { return b.name }))
	is.Equal(depthFirst.ToSlice(), []string{"root", "leaf1", "leaf2"})

	breadthFirst := Select(Of(root).TraverseBreadthFirst(branchKids), FuncMapper(func(b branch) string { return b.name }))
	is.Equal(breadthFirst.ToSlice(), []string{"root", "leaf1", "leaf2"})
}
