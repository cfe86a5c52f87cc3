// internal/report/json.go
package report

import (
	"encoding/json"
	"io"

	"nanocount/pkg/api"
)

func init() {
	register(FormatJSON, writeJSON)
	register(FormatJSONL, writeJSONL)
}

// writeJSON writes a single indented array of GuideCountV1.
func writeJSON(w io.Writer, rows []Row) error {
	out := make([]api.GuideCountV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.API())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeJSONL writes one GuideCountV1 object per line.
func writeJSONL(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	for _, r := range rows {
		if err := enc.Encode(r.API()); err != nil {
			return err
		}
	}
	return nil
}
