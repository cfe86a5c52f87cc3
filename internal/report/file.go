// internal/report/file.go
package report

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"

	"nanocount/core/counter"
	"nanocount/core/guides"
	"nanocount/core/xio"
)

const outBufSize = 1 << 16

// WriteFile renders the report to path. "-" writes uncompressed to stdout.
// Any other destination is written to a temporary file in the same directory
// and renamed into place only after a complete render, so a failed run never
// leaves a partial file. Compression follows the .gz/.zst/.lz4 suffix.
func WriteFile(path string, f Format, cat *guides.Catalog, stats []counter.GuideStats) error {
	if path == "-" {
		return WriteStream(os.Stdout, f, cat, stats)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return &xio.IOError{Op: "create", Path: path, Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriterSize(tmp, outBufSize)
	cw, err := xio.NewWriter(bw, xio.CompressionFromPath(path))
	if err != nil {
		return &xio.IOError{Op: "create", Path: path, Err: err}
	}
	if err := Render(cw, f, cat, stats); err != nil {
		return wrapWrite(path, err)
	}
	if err := cw.Close(); err != nil {
		return wrapWrite(path, err)
	}
	if err := bw.Flush(); err != nil {
		return wrapWrite(path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return wrapWrite(path, err)
	}
	if err := tmp.Close(); err != nil {
		return wrapWrite(path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &xio.IOError{Op: "rename", Path: path, Err: err}
	}
	committed = true
	return nil
}

// WriteStream renders the report to w without compression. A reader that
// goes away early (broken pipe) is not an error.
func WriteStream(w io.Writer, f Format, cat *guides.Catalog, stats []counter.GuideStats) error {
	bw := bufio.NewWriterSize(w, outBufSize)
	if err := Render(bw, f, cat, stats); err != nil {
		if IsBrokenPipe(err) {
			return nil
		}
		return wrapWrite("-", err)
	}
	if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
		return wrapWrite("-", err)
	}
	return nil
}

// wrapWrite leaves validation failures untouched and tags everything else as
// an I/O failure on the destination.
func wrapWrite(path string, err error) error {
	var encErr *EncodingError
	if errors.As(err, &encErr) {
		return err
	}
	var ioErr *xio.IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &xio.IOError{Op: "write", Path: path, Err: err}
}
