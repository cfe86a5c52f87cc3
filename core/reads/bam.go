// core/reads/bam.go
package reads

import (
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"nanocount/core/xio"
)

type bamSource struct {
	path string
	fh   io.Closer
	r    *bam.Reader
}

func openBAM(path string) (Source, error) {
	var in io.ReadCloser = os.Stdin
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, &xio.IOError{Op: "open", Path: path, Err: err}
		}
		in = fh
	}
	r, err := bam.NewReader(in, 1)
	if err != nil {
		_ = in.Close()
		return nil, &xio.IOError{Op: "open", Path: path, Err: err}
	}
	return &bamSource{path: path, fh: in, r: r}, nil
}

// Next skips secondary and supplementary alignments so every read is seen
// once. Sequences are taken as stored; for reads aligned to the reverse
// strand that is the reverse complement of the original read.
func (s *bamSource) Next() (Record, error) {
	for {
		rec, err := s.r.Read()
		if err != nil {
			if err == io.EOF {
				return Record{}, io.EOF
			}
			return Record{}, wrapRead(s.path, err)
		}
		if rec.Flags&(sam.Secondary|sam.Supplementary) != 0 {
			continue
		}
		return Record{ID: rec.Name, Seq: rec.Seq.Expand()}, nil
	}
}

func (s *bamSource) Name() string { return s.path }

func (s *bamSource) Close() error {
	err := s.r.Close()
	if cerr := s.fh.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
