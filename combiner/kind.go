package combiner

import "fmt"

// Kind says which node shapes a combiner's reducer expects. It is
// documentation for grammar authors and diagnostics; nothing checks it.
type Kind int

const (
	// Elements combiners expect both operands to be leaves.
	Elements Kind = iota
	// Lists combiners expect operands that may be branches.
	Lists
)

func (k Kind) String() string {
	switch k {
	case Elements:
		return "Elements"
	case Lists:
		return "Lists"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
