package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"nanocount/core/xio"
)

// Format names an output table encoding.
type Format string

const (
	FormatTSV   Format = "tsv"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatNPY   Format = "npy"
)

// Header lists the table columns in output order.
var Header = []string{
	"construct", "alias", "g1", "g2",
	"count_g1", "count_g2", "count_paired", "count_unpaired",
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if _, ok := renderers[f]; !ok {
		return "", fmt.Errorf("invalid output format %q (want tsv, csv, json, jsonl or npy)", s)
	}
	return f, nil
}

// FormatFromPath infers the format from the destination name, ignoring a
// trailing compression suffix. Unknown extensions and "-" give TSV.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(xio.TrimCompressionExt(path))) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	case ".jsonl", ".ndjson":
		return FormatJSONL
	case ".npy":
		return FormatNPY
	}
	return FormatTSV
}
