// Package counter classifies sequence records against a guide catalog and
// accumulates per-guide match counts.
package counter

// GuideStats holds the four counters of one guide. Counters only ever grow
// until the owning buffer is reset after a fold.
type GuideStats struct {
	G1       uint64 // records containing probe 1
	G2       uint64 // records containing probe 2
	Paired   uint64 // records containing both probes
	Unpaired uint64 // records containing exactly one probe
}

// Add accumulates o element-wise.
func (s *GuideStats) Add(o GuideStats) {
	s.G1 += o.G1
	s.G2 += o.G2
	s.Paired += o.Paired
	s.Unpaired += o.Unpaired
}

// Reset zeroes all counters.
func (s *GuideStats) Reset() { *s = GuideStats{} }

// IsZero reports whether no counter has been incremented.
func (s GuideStats) IsZero() bool { return s == GuideStats{} }

// record applies the match outcome of one record to s.
func (s *GuideStats) record(g1, g2 bool) {
	switch {
	case g1 && g2:
		s.G1++
		s.G2++
		s.Paired++
	case g1:
		s.G1++
		s.Unpaired++
	case g2:
		s.G2++
		s.Unpaired++
	}
}
