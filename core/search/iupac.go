// core/search/iupac.go
package search

/* -------------------------- IUPAC lookup tables ------------------------- */

// bit0=A bit1=C bit2=G bit3=T; 0 = symbol that matches nothing
var (
	iupacMask [256]uint8
	validSym  [256]bool
	plainBase [256]bool // A, C, G, T in either case
)

const maskN = 1 | 2 | 4 | 8

func init() {
	set := func(c byte, bits uint8) {
		iupacMask[c] = bits
		iupacMask[c|0x20] = bits // lowercase
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', maskN)   // any
	iupacMask['.'] = maskN
	iupacMask['-'] = maskN
	iupacMask['*'] = maskN
	iupacMask['='] = maskN // BAM "same as reference"; unaligned reads have none

	for c := 'A'; c <= 'Z'; c++ {
		validSym[c] = true
		validSym[c|0x20] = true
	}
	for _, c := range []byte("ACGTacgt") {
		plainBase[c] = true
	}
	validSym['.'] = true
	validSym['-'] = true
	validSym['*'] = true
	validSym['='] = true
}

// Compatible reports whether two sequence symbols share at least one base.
// Ambiguity codes are honoured on both sides; unknown letters match nothing.
func Compatible(a, b byte) bool {
	return iupacMask[a]&iupacMask[b] != 0
}
