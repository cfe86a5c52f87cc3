// internal/report/registry.go
package report

import (
	"fmt"
	"io"

	"nanocount/core/counter"
	"nanocount/core/guides"
)

// renderFunc writes rows that have already passed validation.
type renderFunc func(w io.Writer, rows []Row) error

// Renderer registry (format → handler). Register in init() blocks of the
// per-format files.
var renderers = map[Format]renderFunc{}

func register(f Format, fn renderFunc) { renderers[f] = fn }

// Render joins the catalog with stats by index and writes one row per guide
// in catalog order. Every name and sequence is validated before the first
// byte is written, so an EncodingError leaves w untouched.
func Render(w io.Writer, f Format, cat *guides.Catalog, stats []counter.GuideStats) error {
	fn, ok := renderers[f]
	if !ok {
		return fmt.Errorf("unknown output format %q (no renderer registered)", f)
	}
	rows, err := Rows(cat, stats)
	if err != nil {
		return err
	}
	return fn(w, rows)
}
