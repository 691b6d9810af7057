// Package combiner folds pairs of parse results into single tree nodes.
//
// A Combiner wraps a pure reducer over nodes of some tag domain. Grammar
// drivers call Combine whenever a rule matches a sequence, feeding the
// result back into their own tree. The package also provides a concrete
// Default combiner over tag.NodeType with a small library of presets.
package combiner

import (
	"fmt"

	"github.com/arr-ai/apc/node"
)

// Reducer folds two nodes into one. Reducers must be pure.
type Reducer[T node.Tag] func(n1, n2 node.Node[T]) node.Node[T]

// Combiner is a named reducer. Combiners are shared by pointer. Only the
// name is mutable, through BindName, and renaming is visible through every
// reference to the combiner.
type Combiner[T node.Tag] struct {
	name   string
	kind   Kind
	reduce Reducer[T]
}

// New returns an unnamed Elements combiner.
func New[T node.Tag](reduce Reducer[T]) *Combiner[T] {
	return NewOfKind(Elements, reduce)
}

// NewOfKind returns an unnamed combiner of the given kind.
func NewOfKind[T node.Tag](kind Kind, reduce Reducer[T]) *Combiner[T] {
	return NewNamed("", kind, reduce)
}

func NewNamed[T node.Tag](name string, kind Kind, reduce Reducer[T]) *Combiner[T] {
	return &Combiner[T]{name: name, kind: kind, reduce: reduce}
}

func (c *Combiner[T]) Name() string { return c.name }
func (c *Combiner[T]) Kind() Kind   { return c.kind }

// Combine returns reduce(n1, n2). Panics from the reducer are not
// recovered.
func (c *Combiner[T]) Combine(n1, n2 node.Node[T]) node.Node[T] {
	return c.reduce(n1, n2)
}

// BindName renames c in place and returns c, so a combiner can be built and
// labelled in one expression.
func (c *Combiner[T]) BindName(name string) *Combiner[T] {
	c.name = name
	return c
}

// Expected describes c in a list of expected alternatives.
func (c *Combiner[T]) Expected() string {
	return fmt.Sprintf("'%s'", c.name)
}

func (c *Combiner[T]) String() string {
	return fmt.Sprintf("%s(%s)", c.name, c.kind)
}
