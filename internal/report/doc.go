// Package report turns the final per-guide statistics into an output table.
//
// Formats are registered by name (tsv, csv, json, jsonl, npy). Rows are always
// in catalog order, and the whole table is validated before anything is
// written.
package report
