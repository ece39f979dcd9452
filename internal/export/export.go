// Package export writes formatted reports to stdout or to a file,
// compressing by extension.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Write sends report data to the destination named by path. An empty
// path or "-" writes to stdout. Files ending in .gz or .zst are
// compressed with gzip or zstandard respectively; anything else is
// written as-is.
func Write(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprintln(os.Stdout, string(data))
		return err
	}

	switch filepath.Ext(path) {
	case ".gz":
		return writeGzip(path, data)
	case ".zst":
		return writeZstd(path, data)
	default:
		return os.WriteFile(path, data, 0644)
	}
}

func writeGzip(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := gzip.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		_ = f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeZstd(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		_ = f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
