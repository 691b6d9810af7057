package node

import (
	"fmt"

	"github.com/arr-ai/apc/gotree"
)

// TreeView renders n as a box-drawn tree, one node per line.
func TreeView[T Tag](n Node[T]) string {
	return toTree(n).Print()
}

func toTree[T Tag](n Node[T]) gotree.Tree {
	if !n.branch {
		return gotree.New(n.String())
	}
	tree := gotree.New(fmt.Sprintf("%v", n.tag))
	for _, child := range n.children {
		if child.branch {
			tree.AddTree(toTree(child))
		} else {
			tree.Add(child.String())
		}
	}
	return tree
}
