package helpers

import (
	"sync"
	"time"
)

// OrderIDGenerator hands out second-resolution timestamp ids that never
// repeat within one process, even for checkouts in the same second.
type OrderIDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewOrderIDGenerator(now func() time.Time) *OrderIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &OrderIDGenerator{now: now}
}

func (g *OrderIDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.now().Unix()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
