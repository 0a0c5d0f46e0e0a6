// Package sequence provides prefixed, zero-padded, strictly increasing
// identifier generation for human-readable record IDs such as journal
// entry numbers (JE0001) or sales order numbers (SALE001).
package sequence

import (
	"fmt"
	"sync"
)

// Generator hands out identifiers of the form <prefix><zero-padded counter>.
// It is safe for concurrent use; each call returns a distinct value and the
// numeric part increases by exactly one per call.
type Generator struct {
	mu     sync.Mutex
	prefix string
	width  int
	next   int64
}

// NewGenerator returns a Generator starting at 1.
func NewGenerator(prefix string, width int) *Generator {
	return &Generator{prefix: prefix, width: width, next: 1}
}

// NewGeneratorStartingAt returns a Generator whose first issued value uses
// the given counter. Used to resume numbering from a persisted store.
func NewGeneratorStartingAt(prefix string, width int, start int64) *Generator {
	if start < 1 {
		start = 1
	}
	return &Generator{prefix: prefix, width: width, next: start}
}

// Next returns the next identifier in the sequence.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := fmt.Sprintf("%s%0*d", g.prefix, g.width, g.next)
	g.next++
	return id
}
