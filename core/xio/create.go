// core/xio/create.go
package xio

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression names a stream codec selected by file suffix.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
	LZ4
)

var suffixes = map[string]Compression{
	".gz":  Gzip,
	".zst": Zstd,
	".lz4": LZ4,
}

// CompressionFromPath returns the codec implied by the final extension of path.
func CompressionFromPath(path string) Compression {
	return suffixes[strings.ToLower(filepath.Ext(path))]
}

// TrimCompressionExt strips a recognised compression suffix, so
// "counts.tsv.gz" yields "counts.tsv".
func TrimCompressionExt(path string) string {
	ext := filepath.Ext(path)
	if _, ok := suffixes[strings.ToLower(ext)]; ok {
		return strings.TrimSuffix(path, ext)
	}
	return path
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NewWriter wraps w with the encoder for c. Closing the result flushes the
// encoder but does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		return zw, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	}
	return nopCloser{w}, nil
}
