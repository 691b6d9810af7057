package combiner

import (
	"fmt"
	"strings"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/apc/node"
	"github.com/arr-ai/apc/tag"
)

// Concat returns an Elements combiner that joins the text of both operands'
// values into a single leaf tagged t.
func Concat(t tag.NodeType) *Default {
	return New[tag.NodeType](func(n1, n2 node.Node[tag.NodeType]) node.Node[tag.NodeType] {
		return node.Leaf(t, fmt.Sprint(n1.Value())+fmt.Sprint(n2.Value()))
	})
}

//nolint:gochecknoglobals
var (
	// String accumulates literal characters into one String leaf.
	String = Concat(tag.String).BindName("String")

	// NodeList pairs two results into a List branch, in order.
	NodeList = NewOfKind[tag.NodeType](Lists, func(n1, n2 node.Node[tag.NodeType]) node.Node[tag.NodeType] {
		return node.BranchOf(tag.List, n1, n2)
	}).BindName("List")

	// First keeps the first result and drops the second.
	First = NewOfKind[tag.NodeType](Lists, func(n1, _ node.Node[tag.NodeType]) node.Node[tag.NodeType] {
		return n1
	}).BindName("First")

	// Second keeps the second result and drops the first.
	Second = NewOfKind[tag.NodeType](Lists, func(_, n2 node.Node[tag.NodeType]) node.Node[tag.NodeType] {
		return n2
	}).BindName("Second")
)

//nolint:gochecknoglobals
var presets = frozen.NewMap(
	frozen.KV("String", String),
	frozen.KV("List", NodeList),
	frozen.KV("First", First),
	frozen.KV("Second", Second),
)

// Presets maps each preset's registered name to the preset. Renaming a
// preset with BindName does not change its key.
func Presets() frozen.Map[string, *Default] {
	return presets
}

// Lookup finds a preset by name.
func Lookup(name string) (*Default, bool) {
	return presets.Get(name)
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	return presets.Keys().OrderedElements(func(a, b string) bool {
		return strings.Compare(a, b) < 0
	})
}

// SortedPresets lists the presets ordered by name.
func SortedPresets() []*Default {
	names := PresetNames()
	out := make([]*Default, 0, len(names))
	for _, name := range names {
		c, _ := presets.Get(name)
		out = append(out, c)
	}
	return out
}
