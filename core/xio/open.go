// core/xio/open.go
package xio

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Open opens path for reading, "-" meaning stdin. gzip, zstd and lz4 streams
// are detected by magic number and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser
	if path == "-" {
		src = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, &IOError{Op: "open", Path: path, Err: err}
		}
		src = fh
	}
	rc, err := NewReader(src)
	if err != nil {
		_ = src.Close()
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	return rc, nil
}

// NewReader wraps src with a decompressor when its first bytes carry a known
// magic number. Closing the result closes src.
func NewReader(src io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(src, 64<<10)
	sig, _ := br.Peek(4)

	switch {
	case bytes.HasPrefix(sig, magicGzip):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, src}}, nil
	case bytes.HasPrefix(sig, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{closerFunc(func() error { zr.Close(); return nil }), src}}, nil
	case bytes.HasPrefix(sig, magicLZ4):
		return &multiReadCloser{Reader: lz4.NewReader(br), closers: []io.Closer{src}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{src}}, nil
}
