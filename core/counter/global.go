// core/counter/global.go
package counter

import "sync"

// Global is the single shared statistics table, index-aligned with the
// catalog. Workers only touch it through Fold.
type Global struct {
	mu      sync.Mutex
	stats   []GuideStats
	records uint64
}

// NewGlobal returns a zeroed table for n guides.
func NewGlobal(n int) *Global {
	return &Global{stats: make([]GuideStats, n)}
}

// Fold adds local into the table and zeroes local, under one lock. The lock
// covers only the O(n) add-and-reset; len(local) must equal the table size.
func (g *Global) Fold(local []GuideStats, records uint64) {
	g.mu.Lock()
	for i := range local {
		g.stats[i].Add(local[i])
		local[i].Reset()
	}
	g.records += records
	g.mu.Unlock()
}

// Snapshot returns a copy of the table.
func (g *Global) Snapshot() []GuideStats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]GuideStats(nil), g.stats...)
}

// Records returns how many records have been folded in.
func (g *Global) Records() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.records
}

// Len returns the number of guides.
func (g *Global) Len() int { return len(g.stats) }
