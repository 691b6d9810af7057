package tag

import (
	"fmt"
	"strings"

	"github.com/arr-ai/frozen"
	"github.com/iancoleman/strcase"
)

// NodeType is the default tag domain. Grammars that don't bring their own
// tags label their nodes with these.
type NodeType int

const (
	Undefined NodeType = iota
	Char
	Digit
	Letter
	String
	Integer
	Number
	Identifier
	Keyword
	Symbol
	Whitespace
	List
	Root
)

var names = [...]string{
	Undefined:  "Undefined",
	Char:       "Char",
	Digit:      "Digit",
	Letter:     "Letter",
	String:     "String",
	Integer:    "Integer",
	Number:     "Number",
	Identifier: "Identifier",
	Keyword:    "Keyword",
	Symbol:     "Symbol",
	Whitespace: "Whitespace",
	List:       "List",
	Root:       "Root",
}

var byName = func() frozen.Map[string, NodeType] {
	kvs := make([]frozen.KeyValue[string, NodeType], 0, len(names))
	for t, name := range names {
		kvs = append(kvs, frozen.KV(name, NodeType(t)))
	}
	return frozen.NewMap(kvs...)
}()

// All returns every NodeType in declaration order.
func All() []NodeType {
	all := make([]NodeType, 0, len(names))
	for t := range names {
		all = append(all, NodeType(t))
	}
	return all
}

func (t NodeType) Valid() bool {
	return t >= 0 && int(t) < len(names)
}

func (t NodeType) String() string {
	if t.Valid() {
		return names[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Parse resolves a tag name. Any common spelling of a name is accepted:
// "number", "NUMBER", "Number", "number-literal" and "number_literal" all
// normalise the same way.
func Parse(name string) (NodeType, error) {
	key := strcase.ToCamel(strings.ToLower(strings.TrimSpace(name)))
	if t, has := byName.Get(key); has {
		return t, nil
	}
	return Undefined, fmt.Errorf("unknown node type %q", name)
}

func (t NodeType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid node type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *NodeType) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
