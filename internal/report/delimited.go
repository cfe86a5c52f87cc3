// internal/report/delimited.go
package report

import (
	"bufio"
	"io"
	"strings"
)

func init() {
	register(FormatTSV, func(w io.Writer, rows []Row) error { return writeDelimited(w, '\t', rows) })
	register(FormatCSV, func(w io.Writer, rows []Row) error { return writeDelimited(w, ',', rows) })
}

// writeDelimited writes a header-led table. A field is quoted only when it
// contains the delimiter, a double quote or a line break; embedded quotes
// are doubled. Leading and trailing spaces are written as they are.
func writeDelimited(w io.Writer, delim byte, rows []Row) error {
	bw := bufio.NewWriter(w)
	writeRecord(bw, delim, Header)
	for _, r := range rows {
		writeRecord(bw, delim, r.Fields())
	}
	return bw.Flush()
}

// writeRecord ignores write errors; bufio.Writer keeps the first one and
// reports it from Flush.
func writeRecord(bw *bufio.Writer, delim byte, fields []string) {
	special := string([]byte{delim, '"', '\r', '\n'})
	for i, f := range fields {
		if i > 0 {
			_ = bw.WriteByte(delim)
		}
		if !strings.ContainsAny(f, special) {
			_, _ = bw.WriteString(f)
			continue
		}
		_ = bw.WriteByte('"')
		_, _ = bw.WriteString(strings.ReplaceAll(f, `"`, `""`))
		_ = bw.WriteByte('"')
	}
	_ = bw.WriteByte('\n')
}
