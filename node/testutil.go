package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertEqualNodes reports every difference between expected and actual,
// naming each mismatch by its child-index path.
func AssertEqualNodes[T Tag](t *testing.T, expected, actual Node[T]) bool {
	t.Helper()
	if !assertEqualNodes(t, expected, actual, []int{}) {
		t.Logf("\nexpected: %v\nactual:   %v", expected, actual)
		return false
	}
	return true
}

func assertEqualNodes[T Tag](t *testing.T, v, u Node[T], path []int) bool {
	t.Helper()
	result := true
	ok := func(ok bool) bool {
		result = result && ok
		return ok
	}
	ok(assert.Equal(t, v.tag, u.tag, "tag at %v", path))
	if !ok(assert.Equal(t, v.branch, u.branch, "branch at %v", path)) {
		return false
	}
	if !v.branch {
		ok(assert.Equal(t, v.value, u.value, "value at %v", path))
		return result
	}
	ok(assert.Equal(t, len(v.children), len(u.children), "children at %v", path))
	n := len(v.children)
	if n > len(u.children) {
		n = len(u.children)
	}
	for i := 0; i < n; i++ {
		subpath := append(append([]int{}, path...), i)
		ok(assertEqualNodes(t, v.children[i], u.children[i], subpath))
	}
	for i, c := range v.children[n:] {
		t.Errorf("%v expected node not found: %v", append(path, n+i), c)
	}
	for i, c := range u.children[n:] {
		t.Errorf("%v unexpected node found: %v", append(path, n+i), c)
	}
	return result
}
