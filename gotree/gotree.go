// Package gotree builds and prints box-drawn trees.
package gotree

import (
	"strings"
)

const (
	newLine      = "\n"
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

// Tree is a labelled node with ordered subtrees. Items print in the order
// they were added.
type Tree interface {
	Add(text string) Tree
	AddTree(tree Tree)
	Items() []Tree
	Text() string
	Print() string
}

type tree struct {
	text  string
	items []Tree
}

// New returns a tree with a single root labelled text.
func New(text string) Tree {
	return &tree{text: text}
}

// Add appends a new leaf labelled text and returns it.
func (t *tree) Add(text string) Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

func (t *tree) Text() string {
	return t.text
}

func (t *tree) Items() []Tree {
	return t.items
}

// Print renders the tree, one line per node, with a trailing newline.
func (t *tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.text)
	sb.WriteString(newLine)
	printItems(&sb, t.items, "")
	return sb.String()
}

func printItems(sb *strings.Builder, items []Tree, prefix string) {
	for i, item := range items {
		last := i == len(items)-1
		indicator, continuation := middleItem, continueItem
		if last {
			indicator, continuation = lastItem, emptySpace
		}
		for j, line := range strings.Split(item.Text(), newLine) {
			sb.WriteString(prefix)
			if j == 0 {
				sb.WriteString(indicator)
			} else {
				sb.WriteString(continuation)
			}
			sb.WriteString(line)
			sb.WriteString(newLine)
		}
		printItems(sb, item.Items(), prefix+continuation)
	}
}
