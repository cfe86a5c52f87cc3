package guides

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanocount/core/xio"
)

func TestLoad_OrderAndUppercase(t *testing.T) {
	in := "c1\ta1\tacgt\tTtTt\n" +
		"# comment\n" +
		"\n" +
		"c2\ta2\tGGGG\tcccc\n"
	cat, err := Load(strings.NewReader(in), LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())

	e0 := cat.Entry(0)
	assert.Equal(t, "c1", string(e0.Construct))
	assert.Equal(t, "a1", string(e0.Alias))
	assert.Equal(t, "ACGT", string(e0.G1))
	assert.Equal(t, "TTTT", string(e0.G2))

	e1 := cat.Entry(1)
	assert.Equal(t, 1, e1.Index)
	assert.Equal(t, "CCCC", string(e1.G2))
}

func TestLoad_NamesKeepCase(t *testing.T) {
	cat, err := Load(strings.NewReader("MixedCase\tlower\tac\tgt\n"), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "MixedCase", string(cat.Entry(0).Construct))
	assert.Equal(t, "lower", string(cat.Entry(0).Alias))
}

func TestLoad_MalformedRecord(t *testing.T) {
	for name, in := range map[string]string{
		"too few":  "c1\ta1\tACGT\tTTTT\nc2\ta2\tACGT\n",
		"too many": "c1\ta1\tACGT\tTTTT\nc2\ta2\tACGT\tTTTT\textra\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(in), LoadOptions{Path: "guides.tsv"})
			var mr *MalformedRecordError
			require.True(t, errors.As(err, &mr), "got %v", err)
			assert.Equal(t, 2, mr.Line)
			assert.Contains(t, err.Error(), "guides.tsv:2")
		})
	}
}

func TestLoad_InvalidProbeSymbol(t *testing.T) {
	_, err := Load(strings.NewReader("c1\ta1\tACGT \tTT1T\n"), LoadOptions{Path: "guides.tsv"})
	var mr *MalformedRecordError
	require.True(t, errors.As(err, &mr), "got %v", err)
	assert.Equal(t, 1, mr.Line)
	assert.Equal(t, "g2", mr.Field)

	var ib *InvalidBaseError
	require.True(t, errors.As(err, &ib))
	assert.Equal(t, byte('1'), ib.Base)
	assert.Equal(t, 3, ib.Pos)
	assert.Contains(t, err.Error(), "guides.tsv:1: malformed record: g2")
}

func TestLoad_ProbeNormalization(t *testing.T) {
	cat, err := Load(strings.NewReader("c1\ta1\t ac gt \t'nnuu'\n"), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ACGT", string(cat.Entry(0).G1))
	assert.Equal(t, "NNUU", string(cat.Entry(0).G2))
}

func TestValidateProbe(t *testing.T) {
	for _, ok := range []string{"", "ACGTURYSWKMBDHVN", "acgt"} {
		_, err := ValidateProbe([]byte(ok))
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"ACG=T", "AC-GT", "ACGX", "A\x01"} {
		_, err := ValidateProbe([]byte(bad))
		assert.Error(t, err, bad)
	}
}

func TestLoad_KeepsDuplicates(t *testing.T) {
	in := "c1\ta1\tACGT\tTTTT\n" +
		"c2\ta2\tAAAA\tCCCC\n" +
		"c3\ta3\tacgt\tTTTT\n" +
		"c4\ta4\tAAAA\tCCCC\n" +
		"c5\ta5\tACGT\tTTTA\n"
	cat, err := Load(strings.NewReader(in), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 5, cat.Len())
	assert.Equal(t, [][]int{{0, 2}, {1, 3}}, cat.Duplicates())
}

func TestViews_IndexAligned(t *testing.T) {
	cat := &Catalog{}
	cat.Add([]byte("x"), []byte("y"), []byte("aa"), []byte("cc"))
	cat.Add([]byte("z"), []byte("w"), []byte("gg"), []byte("tt"))

	var seen []int
	cat.Patterns(func(i int, g1, g2 []byte) {
		seen = append(seen, i)
		e := cat.Entry(i)
		assert.Equal(t, e.G1, g1)
		assert.Equal(t, e.G2, g2)
	})
	assert.Equal(t, []int{0, 1}, seen)

	var names []string
	require.NoError(t, cat.Entries(func(e Entry) error {
		names = append(names, string(e.Construct))
		return nil
	}))
	assert.Equal(t, []string{"x", "z"}, names)
}

func TestLoadFile_CSVAndGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guides.csv.gz")
	fh, err := os.Create(path)
	require.NoError(t, err)
	w, err := xio.NewWriter(fh, xio.Gzip)
	require.NoError(t, err)
	_, err = w.Write([]byte("c1,a1,acgt,tttt\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, fh.Close())

	cat, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())
	assert.Equal(t, "ACGT", string(cat.Entry(0).G1))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.tsv"))
	var ioErr *xio.IOError
	assert.True(t, errors.As(err, &ioErr))
}
