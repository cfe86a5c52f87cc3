// core/counter/processor.go
package counter

import (
	"fmt"

	"nanocount/core/guides"
	"nanocount/core/reads"
	"nanocount/core/search"
)

// probePair is the compiled form of one catalog entry.
type probePair struct {
	g1, g2 *search.Pattern
}

// RecordError wraps a failure to process a single record. It is fatal: a
// record that cannot be decoded means the input stream is corrupt.
type RecordError struct {
	ID  string
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %q: %v", e.ID, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Processor matches records against every guide and keeps private counts
// until the next batch boundary. One Processor belongs to one worker; use
// Clone to get another one that reports into the same Global.
type Processor struct {
	catalog *guides.Catalog
	pairs   []probePair // shared, read-only
	k       int

	searcher *search.Searcher
	local    []GuideStats
	records  uint64 // records seen since the last fold

	global *Global
}

// New compiles the catalog probes and creates a zeroed Global for them.
// k is the maximum edit cost per probe.
func New(cat *guides.Catalog, k int) *Processor {
	pairs := make([]probePair, cat.Len())
	cat.Patterns(func(i int, g1, g2 []byte) {
		pairs[i] = probePair{g1: search.Compile(g1), g2: search.Compile(g2)}
	})
	return &Processor{
		catalog:  cat,
		pairs:    pairs,
		k:        k,
		searcher: search.NewSearcher(),
		local:    make([]GuideStats, cat.Len()),
		global:   NewGlobal(cat.Len()),
	}
}

// Clone returns a Processor that shares the catalog, compiled probes and
// Global with p but owns a fresh searcher and zeroed private counts.
func (p *Processor) Clone() *Processor {
	return &Processor{
		catalog:  p.catalog,
		pairs:    p.pairs,
		k:        p.k,
		searcher: search.NewSearcher(),
		local:    make([]GuideStats, len(p.pairs)),
		global:   p.global,
	}
}

// ProcessRecord tests rec against both probes of every guide and updates the
// private counts. Guides are classified independently, so one record may
// count toward several guides.
func (p *Processor) ProcessRecord(rec reads.Record) error {
	if err := p.searcher.Load(rec.Seq); err != nil {
		return &RecordError{ID: rec.ID, Err: err}
	}
	for i := range p.pairs {
		g1 := p.searcher.Exists(p.pairs[i].g1, p.k)
		g2 := p.searcher.Exists(p.pairs[i].g2, p.k)
		p.local[i].record(g1, g2)
	}
	p.records++
	return nil
}

// OnBatchComplete folds the private counts into the shared Global and
// resets them. It must run before the next batch is processed.
func (p *Processor) OnBatchComplete() error {
	p.global.Fold(p.local, p.records)
	p.records = 0
	return nil
}

// Global returns the shared table.
func (p *Processor) Global() *Global { return p.global }

// Catalog returns the catalog the processor was built from.
func (p *Processor) Catalog() *guides.Catalog { return p.catalog }

// Stats returns a snapshot of the shared counts.
func (p *Processor) Stats() []GuideStats { return p.global.Snapshot() }
