// Package ids issues the time-based record identifiers used by every
// collection: the decimal millisecond clock reading, bumped forward when two
// ids are requested within the same millisecond.
package ids

import (
	"strconv"
	"sync"
	"time"
)

// Generator hands out strictly increasing millisecond ids.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Next returns the next id as its decimal string.
func (g *Generator) Next() string {
	return strconv.FormatInt(g.NextMillis(), 10)
}

// NextMillis returns max(now in ms, last+1).
func (g *Generator) NextMillis() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return ms
}

// Prefixed returns prefix + Next(), e.g. "ORD-1717000000000".
func (g *Generator) Prefixed(prefix string) string {
	return prefix + g.Next()
}

var defaultGenerator = NewGenerator(nil)

// Next draws from the process-wide generator.
func Next() string {
	return defaultGenerator.Next()
}
