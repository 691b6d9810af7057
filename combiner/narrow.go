package combiner

import (
	"fmt"
	"reflect"

	"github.com/arr-ai/apc/node"
	"github.com/arr-ai/apc/tag"
)

// Default is a combiner over the default tag domain, tag.NodeType.
type Default = Combiner[tag.NodeType]

// ConfigError reports a combiner built for one tag domain being used where
// the default domain is required. It signals a programming mistake.
type ConfigError struct {
	Domain string
	nilRef bool
}

func (e *ConfigError) Error() string {
	if e.nilRef {
		return fmt.Sprintf("cannot use nil *Combiner[%s] as *Combiner[%s]", e.Domain, domainOf[tag.NodeType]())
	}
	return fmt.Sprintf("cannot use *Combiner[%s] as *Combiner[%s]: tag domain mismatch",
		e.Domain, domainOf[tag.NodeType]())
}

// Narrow views c as a Default combiner. It succeeds only if T is
// tag.NodeType, in which case the result is c itself, so name, kind and
// reducer carry over and later renames are shared.
func Narrow[T node.Tag](c *Combiner[T]) (*Default, error) {
	if c == nil {
		return nil, &ConfigError{Domain: domainOf[T](), nilRef: true}
	}
	if d, ok := any(c).(*Default); ok {
		return d, nil
	}
	return nil, &ConfigError{Domain: domainOf[T]()}
}

// MustNarrow is Narrow, panicking on failure.
func MustNarrow[T node.Tag](c *Combiner[T]) *Default {
	d, err := Narrow(c)
	if err != nil {
		panic(err)
	}
	return d
}

func domainOf[T node.Tag]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
