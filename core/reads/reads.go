// Package reads supplies sequence records from FASTA, FASTQ and BAM files.
package reads

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"nanocount/core/xio"
)

// Record is one sequence entry. Seq is owned by the record.
type Record struct {
	ID  string
	Seq []byte
}

// Source yields records in file order. Next returns io.EOF after the last
// record.
type Source interface {
	Next() (Record, error)
	Name() string
	Close() error
}

// Format selects a decoder.
type Format string

const (
	FormatAuto  Format = "auto"
	FormatFASTX Format = "fastx" // FASTA or FASTQ, optionally compressed
	FormatBAM   Format = "bam"
)

// ParseFormat validates a user-supplied format name; "" means auto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatFASTX, FormatBAM:
		return f, nil
	}
	return "", fmt.Errorf("unknown input format %q (want auto, fastx or bam)", s)
}

// Open returns a Source for path ("-" = stdin). With FormatAuto, *.bam files
// are read as BAM and everything else as FASTA/FASTQ.
func Open(path string, f Format) (Source, error) {
	if f == FormatAuto || f == "" {
		f = FormatFASTX
		if strings.EqualFold(filepath.Ext(path), ".bam") {
			f = FormatBAM
		}
	}
	switch f {
	case FormatBAM:
		return openBAM(path)
	case FormatFASTX:
		return openFASTX(path)
	}
	return nil, fmt.Errorf("unknown input format %q", f)
}

// sliceSource serves records from memory.
type sliceSource struct {
	name string
	recs []Record
	pos  int
}

// NewSliceSource returns a Source over recs.
func NewSliceSource(name string, recs ...Record) Source {
	return &sliceSource{name: name, recs: recs}
}

func (s *sliceSource) Next() (Record, error) {
	if s.pos >= len(s.recs) {
		return Record{}, io.EOF
	}
	r := s.recs[s.pos]
	s.pos++
	return r, nil
}

func (s *sliceSource) Name() string { return s.name }
func (s *sliceSource) Close() error { return nil }

func wrapRead(path string, err error) error {
	return &xio.IOError{Op: "read", Path: path, Err: err}
}
