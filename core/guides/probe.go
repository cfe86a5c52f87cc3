// core/guides/probe.go
package guides

import (
	"bytes"
	"fmt"
)

// ProbeAlphabet lists the symbols a probe may contain after normalization:
// the IUPAC nucleotide codes plus U.
const ProbeAlphabet = "ACGTURYSWKMBDHVN"

var probeSym [256]bool

func init() {
	for i := 0; i < len(ProbeAlphabet); i++ {
		probeSym[ProbeAlphabet[i]] = true
	}
}

// InvalidBaseError reports a probe symbol outside ProbeAlphabet. Pos is
// 1-based within the normalized probe.
type InvalidBaseError struct {
	Pos  int
	Base byte
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base %q at %d; allowed: A C G T U R Y S W K M B D H V N", e.Base, e.Pos)
}

// NormalizeProbe drops whitespace and quote characters and uppercases the
// rest.
func NormalizeProbe(raw []byte) []byte {
	out := make([]byte, 0, len(raw))
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\r', '\n', '\v', '\f', '\'', '"':
			continue
		}
		out = append(out, c)
	}
	return bytes.ToUpper(out)
}

// ValidateProbe returns the normalized probe, or an *InvalidBaseError for the
// first symbol that is not an IUPAC code.
func ValidateProbe(raw []byte) ([]byte, error) {
	p := NormalizeProbe(raw)
	for i, c := range p {
		if !probeSym[c] {
			return nil, &InvalidBaseError{Pos: i + 1, Base: c}
		}
	}
	return p, nil
}
