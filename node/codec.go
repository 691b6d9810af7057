package node

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/arr-ai/apc/tag"
)

// wireNode is the serialised form of a default-domain node. Leaves carry
// value; branches carry nodes, which is present (possibly empty) exactly
// when the node is a branch.
type wireNode struct {
	Tag   tag.NodeType `json:"tag" yaml:"tag"`
	Value any          `json:"value,omitempty" yaml:"value,omitempty"`
	Nodes *[]wireNode  `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

type unmarshaler func(data []byte, v interface{}) error

func toWire(n Node[tag.NodeType]) wireNode {
	if !n.branch {
		return wireNode{Tag: n.tag, Value: n.value}
	}
	nodes := make([]wireNode, 0, len(n.children))
	for _, child := range n.children {
		nodes = append(nodes, toWire(child))
	}
	return wireNode{Tag: n.tag, Nodes: &nodes}
}

// unmarshalJSON decodes numbers as json.Number so that integers too large
// for a float64 keep every digit.
func unmarshalJSON(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// narrowNumber narrows a decoded JSON number to an int, or to a float64 when that
// prints back as the same literal. Anything else stays a json.Number.
func narrowNumber(n json.Number) any {
	if i, err := strconv.ParseInt(n.String(), 10, 0); err == nil {
		return int(i)
	}
	if f, err := n.Float64(); err == nil && strconv.FormatFloat(f, 'g', -1, 64) == n.String() {
		return f
	}
	return n
}

func fromWire(w wireNode, path []int) (Node[tag.NodeType], error) {
	if w.Nodes == nil {
		if n, ok := w.Value.(json.Number); ok {
			return Leaf(w.Tag, narrowNumber(n)), nil
		}
		return Leaf(w.Tag, w.Value), nil
	}
	if w.Value != nil {
		return Node[tag.NodeType]{}, fmt.Errorf("node %v: has both a value and child nodes", path)
	}
	children := make([]Node[tag.NodeType], 0, len(*w.Nodes))
	for i, c := range *w.Nodes {
		child, err := fromWire(c, append(path, i))
		if err != nil {
			return Node[tag.NodeType]{}, err
		}
		children = append(children, child)
	}
	return BranchOf(w.Tag, children...), nil
}

func decodeOne(unmarshal unmarshaler, data []byte) (Node[tag.NodeType], error) {
	var w wireNode
	if err := unmarshal(data, &w); err != nil {
		return Node[tag.NodeType]{}, err
	}
	return fromWire(w, []int{})
}

func decodeList(unmarshal unmarshaler, data []byte) ([]Node[tag.NodeType], error) {
	var ws []wireNode
	if err := unmarshal(data, &ws); err != nil {
		return nil, err
	}
	out := make([]Node[tag.NodeType], 0, len(ws))
	for i, w := range ws {
		n, err := fromWire(w, []int{i})
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func EncodeJSON(n Node[tag.NodeType]) ([]byte, error) {
	return json.Marshal(toWire(n))
}

func DecodeJSON(data []byte) (Node[tag.NodeType], error) {
	return decodeOne(unmarshalJSON, data)
}

// DecodeJSONList decodes a JSON array of nodes.
func DecodeJSONList(data []byte) ([]Node[tag.NodeType], error) {
	return decodeList(unmarshalJSON, data)
}

func EncodeYAML(n Node[tag.NodeType]) ([]byte, error) {
	return yaml.Marshal(toWire(n))
}

func DecodeYAML(data []byte) (Node[tag.NodeType], error) {
	return decodeOne(yaml.Unmarshal, data)
}

// DecodeYAMLList decodes a YAML sequence of nodes.
func DecodeYAMLList(data []byte) ([]Node[tag.NodeType], error) {
	return decodeList(yaml.Unmarshal, data)
}
