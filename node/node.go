package node

import (
	"fmt"
	"reflect"
)

// Tag is the constraint on tag domains. The engine only ever compares tags.
type Tag interface {
	comparable
}

// Node is one unit of a parse tree: a tag plus either a scalar value (a
// leaf) or an ordered list of children (a branch). Nodes are immutable once
// built.
type Node[T Tag] struct {
	tag      T
	value    any
	children []Node[T]
	branch   bool
}

// Leaf returns a node carrying a scalar value.
func Leaf[T Tag](tag T, value any) Node[T] {
	return Node[T]{tag: tag, value: value}
}

// Branch returns a node with the zero tag of T whose children are exactly
// the given nodes, in the given order.
func Branch[T Tag](children ...Node[T]) Node[T] {
	var zero T
	return BranchOf(zero, children...)
}

// BranchOf is Branch with an explicit tag.
func BranchOf[T Tag](tag T, children ...Node[T]) Node[T] {
	owned := make([]Node[T], len(children))
	copy(owned, children)
	return Node[T]{tag: tag, children: owned, branch: true}
}

func (n Node[T]) Tag() T { return n.tag }

// Value is the scalar payload of a leaf, or nil for a branch.
func (n Node[T]) Value() any { return n.value }

func (n Node[T]) IsBranch() bool { return n.branch }

func (n Node[T]) Count() int { return len(n.children) }

// Children returns a copy of a branch's children, or nil for a leaf.
func (n Node[T]) Children() []Node[T] {
	if !n.branch {
		return nil
	}
	out := make([]Node[T], len(n.children))
	copy(out, n.children)
	return out
}

// Get walks down the tree following child indices. It panics if the path
// leaves the tree.
func (n Node[T]) Get(path ...int) Node[T] {
	v := n
	for _, i := range path {
		v = v.children[i]
	}
	return v
}

// Equal reports whether a and b have the same tag, shape, value and
// children.
func Equal[T Tag](a, b Node[T]) bool {
	if a.tag != b.tag || a.branch != b.branch {
		return false
	}
	if !a.branch {
		return reflect.DeepEqual(a.value, b.value)
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

func (n Node[T]) String() string {
	return fmt.Sprintf("%v", n)
}

// Format prints the tag followed by the value (leaves) or the bracketed
// children (branches). Verb and flags apply to the value and to each child.
func (n Node[T]) Format(state fmt.State, c rune) {
	fmt.Fprintf(state, "%v", n.tag)
	format := fmt.FormatString(state, c)
	if !n.branch {
		fmt.Fprintf(state, "‣"+format, n.value)
		return
	}
	fmt.Fprint(state, "[")
	for i, child := range n.children {
		if i > 0 {
			fmt.Fprint(state, ", ")
		}
		fmt.Fprintf(state, format, child)
	}
	fmt.Fprint(state, "]")
}
