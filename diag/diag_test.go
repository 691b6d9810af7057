package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arr-ai/apc/position"
)

type fixed string

func (f fixed) LineColumn() string { return string(f) }

type name string

func (n name) Expected() string { return string(n) }

func TestJoinExpected(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		expected string
		in       []Describer
	}{
		{"", nil},
		{"a", []Describer{name("a")}},
		{"a or b", []Describer{name("a"), name("b")}},
		{"a, b or c", []Describer{name("a"), name("b"), name("c")}},
		{"a, b, c or d", []Describer{name("a"), name("b"), name("c"), name("d")}},
	} {
		test := test
		t.Run(test.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, JoinExpected(test.in...))
		})
	}
}

func TestUnexpected(t *testing.T) {
	t.Parallel()

	f := New(fixed("3:7"))
	assert.Equal(t,
		"Syntax Error (3:7): Unexpected 'x' (expected '+', '-' or digit).",
		f.Unexpected("x", Literal("+"), Literal("-"), name("digit")))
	assert.Equal(t,
		"Syntax Error (3:7): Unexpected '42' (expected ';').",
		f.Unexpected(42, Literal(";")))
}

func TestInvalid(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"Syntax Error (1:1): Invalid number; too many digits.",
		New(fixed("1:1")).Invalid("number", "too many digits"))
}

func TestFormatterFollowsTracker(t *testing.T) {
	t.Parallel()

	tracker := position.New("ab\ncd")
	f := New(tracker)
	assert.Equal(t, "Syntax Error (1:1): oops.", f.SyntaxError("oops"))

	tracker.Advance(4)
	assert.Equal(t, "Syntax Error (2:2): oops.", f.SyntaxError("oops"))
}
