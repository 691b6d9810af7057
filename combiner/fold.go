package combiner

import (
	"errors"
	"fmt"

	"github.com/arr-ai/apc/debug"
	"github.com/arr-ai/apc/node"
)

var errEmptyFold = errors.New("nothing to fold")

// Fold combines nodes from left to right: c(c(c(n0, n1), n2), ...). A single
// node is returned as is.
func Fold[T node.Tag](c *Combiner[T], nodes ...node.Node[T]) (node.Node[T], error) {
	if len(nodes) == 0 {
		return node.Node[T]{}, errEmptyFold
	}
	acc := nodes[0]
	for _, n := range nodes[1:] {
		acc = c.Combine(acc, n)
	}
	return acc, nil
}

// Traced wraps c so that every Combine is reported to p. The wrapper starts
// with c's name and kind but is a separate combiner.
func Traced[T node.Tag](c *Combiner[T], p *debug.Printer) *Combiner[T] {
	return NewNamed[T](c.Name(), c.Kind(), func(n1, n2 node.Node[T]) node.Node[T] {
		result := c.Combine(n1, n2)
		if p.Enabled() {
			p.Print(fmt.Sprintf("%s: %v + %v => %v", c.Name(), n1, n2, result))
		}
		return result
	})
}
