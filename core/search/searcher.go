// core/search/searcher.go
package search

import (
	"bytes"
	"fmt"
)

// InvalidSymbolError reports a byte in a haystack that is not part of the
// sequence alphabet.
type InvalidSymbolError struct {
	Pos  int
	Byte byte
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid sequence symbol %q at position %d", e.Byte, e.Pos)
}

// Searcher answers bounded edit-distance existence queries against one loaded
// haystack at a time. Its buffers are reused between records, so a Searcher
// must not be shared between goroutines.
type Searcher struct {
	text      []uint8 // IUPAC masks of the loaded haystack
	upper     []byte  // uppercased haystack, only meaningful when !ambiguous
	ambiguous bool    // haystack holds a symbol other than A/C/G/T
	col       []int   // DP column for long patterns
}

// NewSearcher returns an empty Searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Load encodes text as the current haystack.
func (s *Searcher) Load(text []byte) error {
	s.text = s.text[:0]
	s.upper = s.upper[:0]
	s.ambiguous = false
	for i, c := range text {
		if !validSym[c] {
			return &InvalidSymbolError{Pos: i, Byte: c}
		}
		if !plainBase[c] {
			s.ambiguous = true
		}
		s.text = append(s.text, iupacMask[c])
		s.upper = append(s.upper, c&^0x20)
	}
	return nil
}

// Exists reports whether p occurs anywhere in the loaded haystack with at most
// k substitutions, insertions and deletions. Only existence is computed.
func (s *Searcher) Exists(p *Pattern, k int) bool {
	m := p.Len()
	if m <= k {
		return true
	}
	if len(s.text) == 0 {
		return false
	}
	// exact fast path: SIMD'd bytes.Index
	if k == 0 && p.unambiguous && !s.ambiguous {
		return bytes.Contains(s.upper, p.seq)
	}
	if m <= maxBitParallel {
		return s.bitParallel(p, k)
	}
	return s.columnDP(p, k)
}

// Search loads text and runs Exists for a single uncompiled pattern.
func (s *Searcher) Search(pattern, text []byte, k int) (bool, error) {
	if err := s.Load(text); err != nil {
		return false, err
	}
	return s.Exists(Compile(pattern), k), nil
}

// bitParallel is Myers' bit-vector algorithm with a free start in the text:
// the score tracks the last DP row, i.e. the best cost of a match ending at
// the current text position.
func (s *Searcher) bitParallel(p *Pattern, k int) bool {
	m := p.Len()
	high := uint64(1) << uint(m-1)
	pv := ^uint64(0)
	mv := uint64(0)
	score := m

	for _, tm := range s.text {
		eq := p.peq[tm]
		xv := eq | mv
		xh := (((eq & pv) + pv) ^ pv) | eq
		ph := mv | ^(xh | pv)
		mh := pv & xh
		if ph&high != 0 {
			score++
		} else if mh&high != 0 {
			score--
		}
		ph <<= 1 // row 0 is all zeros: no carry-in
		mh <<= 1
		pv = mh | ^(xv | ph)
		mv = ph & xv
		if score <= k {
			return true
		}
	}
	return false
}

// columnDP is Sellers' semi-global edit-distance recurrence, one column per
// text symbol, reusing s.col.
func (s *Searcher) columnDP(p *Pattern, k int) bool {
	m := p.Len()
	if cap(s.col) < m+1 {
		s.col = make([]int, m+1)
	}
	col := s.col[:m+1]
	for i := range col {
		col[i] = i
	}

	for _, tm := range s.text {
		diag := col[0]
		for i := 1; i <= m; i++ {
			cost := 1
			if p.masks[i-1]&tm != 0 {
				cost = 0
			}
			v := diag + cost
			if up := col[i-1] + 1; up < v {
				v = up
			}
			if left := col[i] + 1; left < v {
				v = left
			}
			diag = col[i]
			col[i] = v
		}
		if col[m] <= k {
			return true
		}
	}
	return false
}
