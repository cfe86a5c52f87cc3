package search

import "bytes"

// maxBitParallel is the longest pattern handled by the single-word
// bit-vector search; longer patterns use the column DP.
const maxBitParallel = 64

// Pattern is a compiled probe. It is immutable once built and may be shared
// by any number of Searchers.
type Pattern struct {
	seq         []byte // uppercased
	masks       []uint8
	peq         [16]uint64 // pattern positions compatible with each text mask
	unambiguous bool       // pattern is plain ACGT
}

// Compile prepares p for repeated searching.
func Compile(p []byte) *Pattern {
	pat := &Pattern{
		seq:         bytes.ToUpper(p),
		masks:       make([]uint8, len(p)),
		unambiguous: true,
	}
	for j, c := range p {
		pat.masks[j] = iupacMask[c]
		if !plainBase[c] {
			pat.unambiguous = false
		}
	}
	if len(p) <= maxBitParallel {
		for tm := 1; tm < 16; tm++ {
			var bits uint64
			for j, m := range pat.masks {
				if m&uint8(tm) != 0 {
					bits |= 1 << uint(j)
				}
			}
			pat.peq[tm] = bits
		}
	}
	return pat
}

// Len returns the pattern length.
func (p *Pattern) Len() int { return len(p.masks) }

// String returns the uppercased pattern.
func (p *Pattern) String() string { return string(p.seq) }
