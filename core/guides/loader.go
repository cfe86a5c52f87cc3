// core/guides/loader.go
package guides

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"nanocount/core/xio"
)

// NumFields is the column count of a catalog row: construct, alias, g1, g2.
const NumFields = 4

var fieldNames = [NumFields]string{"construct", "alias", "g1", "g2"}

// LoadOptions controls catalog parsing. The zero value reads tab-delimited rows.
type LoadOptions struct {
	Delimiter rune   // 0 = tab
	Path      string // used in error messages only
}

// LoadFile reads a catalog from path ("-" for stdin). Rows are comma-delimited
// when the name ends in .csv (before any compression suffix), tab-delimited
// otherwise.
func LoadFile(path string) (*Catalog, error) {
	rc, err := xio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	opts := LoadOptions{Path: path}
	if strings.EqualFold(filepath.Ext(xio.TrimCompressionExt(path)), ".csv") {
		opts.Delimiter = ','
	}
	return Load(rc, opts)
}

// Load parses header-less rows of exactly four fields in input order. Blank
// lines and lines starting with '#' are skipped. Probes are normalized with
// ValidateProbe; a probe with a non-IUPAC symbol is a malformed record.
// Duplicate probes are kept.
func Load(r io.Reader, opts LoadOptions) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.Comment = '#'
	cr.FieldsPerRecord = NumFields
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	c := &Catalog{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if pe, ok := err.(*csv.ParseError); ok {
				return nil, &MalformedRecordError{Path: opts.Path, Line: pe.Line, Fields: len(rec), Err: pe.Err}
			}
			return nil, &xio.IOError{Op: "read", Path: opts.Path, Err: err}
		}
		var probes [2][]byte
		for j, field := range [2]int{2, 3} {
			p, err := ValidateProbe([]byte(rec[field]))
			if err != nil {
				line, _ := cr.FieldPos(field)
				return nil, &MalformedRecordError{Path: opts.Path, Line: line, Field: fieldNames[field], Err: err}
			}
			probes[j] = p
		}
		c.Add([]byte(rec[0]), []byte(rec[1]), probes[0], probes[1])
	}
	return c, nil
}
