// core/reads/fastx.go
package reads

import (
	"bytes"
	"io"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"

	"nanocount/core/xio"
)

type fastxSource struct {
	path string
	r    *fastx.Reader
}

func openFASTX(path string) (Source, error) {
	// Unlimit: symbols are validated by the searcher, not the parser
	r, err := fastx.NewReader(seq.Unlimit, path, "")
	if err != nil {
		return nil, &xio.IOError{Op: "open", Path: path, Err: err}
	}
	return &fastxSource{path: path, r: r}, nil
}

func (s *fastxSource) Next() (Record, error) {
	rec, err := s.r.Read()
	if err != nil {
		if err == io.EOF {
			return Record{}, io.EOF
		}
		return Record{}, wrapRead(s.path, err)
	}
	// the reader reuses its buffers between calls
	return Record{ID: string(rec.ID), Seq: bytes.Clone(rec.Seq.Seq)}, nil
}

func (s *fastxSource) Name() string { return s.path }

func (s *fastxSource) Close() error {
	s.r.Close()
	return nil
}
