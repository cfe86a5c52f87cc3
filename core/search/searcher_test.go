package search

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		k       int
		want    bool
	}{
		{"exact", "ACGT", "AAACGTAAA", 0, true},
		{"absent", "TTTT", "AAACGTAAA", 1, false},
		{"one substitution k=1", "ACGA", "AAACGTAAA", 1, true},
		{"one substitution k=0", "ACGA", "AAACGTAAA", 0, false},
		{"extra base in pattern", "ACGGT", "AAACGTAAA", 1, true},
		{"missing base in pattern", "ACT", "AAACGTAAA", 1, true},
		{"missing base in pattern k=0", "ACT", "AAACGTAAA", 0, false},
		{"ambiguous pattern", "ACNT", "AAACGTAAA", 0, true},
		{"ambiguous pattern mismatch", "ACRT", "AAACCTAAA", 0, false},
		{"ambiguous haystack", "ACGT", "TTANGTTT", 0, true},
		{"lowercase haystack", "ACGT", "aaacgtaaa", 0, true},
		{"lowercase pattern", "acgt", "AAACGTAAA", 0, true},
		{"rna haystack", "ACGT", "AAACGUAAA", 0, true},
		{"pattern longer than text", "ACGTACGT", "ACGT", 4, true},
		{"pattern longer than text over budget", "ACGTACGT", "ACGT", 3, false},
		{"budget covers pattern", "AC", "", 2, true},
		{"empty text", "AC", "", 0, false},
		{"at text end", "GGG", "AAAAGGG", 0, true},
		{"at text start", "GGG", "GGGAAAA", 0, true},
	}
	s := NewSearcher()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Search([]byte(tc.pattern), []byte(tc.text), tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoad_InvalidSymbol(t *testing.T) {
	s := NewSearcher()
	err := s.Load([]byte("AC\x00GT"))
	var ise *InvalidSymbolError
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, 2, ise.Pos)
	assert.Equal(t, byte(0), ise.Byte)

	require.NoError(t, s.Load([]byte("AC.-*GT")))
}

func TestLoad_BAMEqualsIsWildcard(t *testing.T) {
	s := NewSearcher()
	require.NoError(t, s.Load([]byte("TTAC=TTT")))
	assert.True(t, s.Exists(Compile([]byte("ACGT")), 0))
	assert.True(t, s.Exists(Compile([]byte("ACAT")), 0))
	assert.False(t, s.Exists(Compile([]byte("GCGT")), 0))
}

func TestSearcherReuse(t *testing.T) {
	s := NewSearcher()
	p := Compile([]byte("GATTACA"))

	require.NoError(t, s.Load([]byte("CCCGATTACACCC")))
	assert.True(t, s.Exists(p, 0))

	require.NoError(t, s.Load([]byte("CCC")))
	assert.False(t, s.Exists(p, 0))
}

func TestLongPattern(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pat := randomSeq(rng, 90, "ACGT")
	mut := []byte(pat)
	mut[10] = flip(mut[10])
	mut[60] = flip(mut[60])
	text := randomSeq(rng, 40, "ACGT") + string(mut) + randomSeq(rng, 40, "ACGT")

	s := NewSearcher()
	p := Compile([]byte(pat))
	require.NoError(t, s.Load([]byte(text)))
	assert.True(t, s.Exists(p, 2))
	assert.False(t, s.Exists(p, 0))

	require.NoError(t, s.Load([]byte(pat)))
	assert.True(t, s.Exists(p, 0))
}

func TestBitParallelAgreesWithColumnDP(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewSearcher()
	for iter := 0; iter < 2000; iter++ {
		pat := Compile([]byte(randomSeq(rng, 1+rng.Intn(20), "ACGTN")))
		text := randomSeq(rng, rng.Intn(60), "ACGTRY")
		require.NoError(t, s.Load([]byte(text)))
		for k := 0; k < 4; k++ {
			if pat.Len() <= k || len(text) == 0 {
				continue
			}
			require.Equal(t, s.columnDP(pat, k), s.bitParallel(pat, k),
				"pattern=%s text=%s k=%d", pat, text, k)
		}
	}
}

func TestCompatible(t *testing.T) {
	assert.True(t, Compatible('A', 'N'))
	assert.True(t, Compatible('R', 'g'))
	assert.False(t, Compatible('R', 'C'))
	assert.False(t, Compatible('X', 'A'))
}

func randomSeq(rng *rand.Rand, n int, alphabet string) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

func flip(c byte) byte {
	switch c {
	case 'A':
		return 'C'
	case 'C':
		return 'G'
	case 'G':
		return 'T'
	}
	return 'A'
}
