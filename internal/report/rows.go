// internal/report/rows.go
package report

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"nanocount/core/counter"
	"nanocount/core/guides"
	"nanocount/pkg/api"
)

// Row is one guide joined with its counts.
type Row struct {
	Construct string
	Alias     string
	G1        string
	G2        string
	Stats     counter.GuideStats
}

// Rows builds the report rows in catalog order. stats must be index-aligned
// with the catalog.
func Rows(cat *guides.Catalog, stats []counter.GuideStats) ([]Row, error) {
	if len(stats) != cat.Len() {
		return nil, fmt.Errorf("statistics cover %d guides, catalog has %d", len(stats), cat.Len())
	}
	rows := make([]Row, 0, cat.Len())
	err := cat.Entries(func(e guides.Entry) error {
		fields := [...]struct {
			name string
			val  []byte
		}{
			{"construct", e.Construct},
			{"alias", e.Alias},
			{"g1", e.G1},
			{"g2", e.G2},
		}
		for _, f := range fields {
			if !utf8.Valid(f.val) {
				return &EncodingError{Index: e.Index, Field: f.name}
			}
		}
		rows = append(rows, Row{
			Construct: string(e.Construct),
			Alias:     string(e.Alias),
			G1:        string(e.G1),
			G2:        string(e.G2),
			Stats:     stats[e.Index],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Fields returns the row in Header order.
func (r Row) Fields() []string {
	return []string{
		r.Construct, r.Alias, r.G1, r.G2,
		strconv.FormatUint(r.Stats.G1, 10),
		strconv.FormatUint(r.Stats.G2, 10),
		strconv.FormatUint(r.Stats.Paired, 10),
		strconv.FormatUint(r.Stats.Unpaired, 10),
	}
}

// API converts a row to the stable wire schema (v1).
func (r Row) API() api.GuideCountV1 {
	return api.GuideCountV1{
		Construct:     r.Construct,
		Alias:         r.Alias,
		G1:            r.G1,
		G2:            r.G2,
		CountG1:       r.Stats.G1,
		CountG2:       r.Stats.G2,
		CountPaired:   r.Stats.Paired,
		CountUnpaired: r.Stats.Unpaired,
	}
}
