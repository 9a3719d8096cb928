package formats

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

var compressionSuffixes = []string{".gz", ".bz2"}

// File is an opened mesh file, transparently decompressed.
type File struct {
	io.Reader
	closers []io.Closer
}

// Close releases the decompressor and the underlying file.
func (f *File) Close() error {
	var first error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open opens path for reading. Files ending in .gz or .bz2 are decompressed
// on the fly.
func Open(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	f := &File{Reader: file, closers: []io.Closer{file}}

	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		zr, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("reading gzip header: %w", err)
		}
		f.Reader = zr
		f.closers = append(f.closers, zr)
	case strings.HasSuffix(lower, ".bz2"):
		f.Reader = bzip2.NewReader(file)
	}
	return f, nil
}
