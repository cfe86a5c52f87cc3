// internal/report/npy.go
package report

import (
	"io"

	"github.com/kshedden/gonpy"
)

func init() {
	register(FormatNPY, writeNPY)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// writeNPY writes the counts as an N×4 uint64 matrix (count_g1, count_g2,
// count_paired, count_unpaired), row i being guide i. Names and sequences
// are not part of the matrix.
func writeNPY(w io.Writer, rows []Row) error {
	data := make([]uint64, 0, 4*len(rows))
	for _, r := range rows {
		data = append(data, r.Stats.G1, r.Stats.G2, r.Stats.Paired, r.Stats.Unpaired)
	}
	npw, err := gonpy.NewWriter(nopCloser{w})
	if err != nil {
		return err
	}
	npw.Shape = []int{len(rows), 4}
	return npw.WriteUint64(data)
}
