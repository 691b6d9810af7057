package position

import (
	"fmt"
	"strings"
	"sync"
)

// Tracker follows how far a driver has consumed its source. It is shared,
// read-mostly state: drivers advance it while diagnostics read it.
type Tracker struct {
	mu     sync.RWMutex
	src    string
	offset int
}

func New(src string) *Tracker {
	return &Tracker{src: src}
}

// Advance moves the tracker forward by n bytes, stopping at the end of the
// source.
func (t *Tracker) Advance(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offset += n
	if t.offset > len(t.src) {
		t.offset = len(t.src)
	}
	if t.offset < 0 {
		t.offset = 0
	}
}

// Reset rewinds the tracker to the start of src.
func (t *Tracker) Reset(src string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.src = src
	t.offset = 0
}

func (t *Tracker) Offset() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.offset
}

// Position is the 1-indexed line and column of the current offset.
func (t *Tracker) Position() (int, int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return lineColumn(t.src, t.offset)
}

// LineColumn formats Position as "line:col".
func (t *Tracker) LineColumn() string {
	line, col := t.Position()
	return fmt.Sprintf("%d:%d", line, col)
}

func lineColumn(str string, pos int) (line, col int) {
	prefix := str[:pos]
	line = strings.Count(prefix, "\n") + 1
	col = pos - strings.LastIndex(prefix, "\n")
	return
}
