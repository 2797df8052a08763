package mmap

import (
	"errors"
	"io"
	"os"
	"sync/atomic"
)

// Hint tells the kernel how mapped labels will be read.
type Hint int

const (
	HintNormal Hint = iota
	// HintSequential suits whole-file decoding.
	HintSequential
	// HintRandom suits single-label lookups.
	HintRandom
	// HintWillNeed prefetches.
	HintWillNeed
)

var (
	ErrClosed      = errors.New("mmap: file is closed")
	ErrTooLarge    = errors.New("mmap: file too large to map")
	ErrOutOfBounds = errors.New("mmap: range out of bounds")
)

// File is a read-only mapped file.
type File struct {
	data   []byte
	closed atomic.Bool
	unmap  func([]byte) error
}

// Open maps path. Empty files map to an empty File without a syscall.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	n := fi.Size()
	if int64(int(n)) != n {
		return nil, ErrTooLarge
	}
	if n == 0 {
		return &File{}, nil
	}

	data, unmap, err := osMap(f, int(n))
	if err != nil {
		return nil, &os.PathError{Op: "mmap", Path: path, Err: err}
	}
	return &File{data: data, unmap: unmap}, nil
}

// Len is the mapped size in bytes. It stays valid after Close.
func (f *File) Len() int { return len(f.data) }

// Bytes returns the whole mapping, or nil after Close.
func (f *File) Bytes() []byte {
	if f.closed.Load() {
		return nil
	}
	return f.data
}

// Peek returns up to n leading bytes, enough to sniff a format.
func (f *File) Peek(n int) []byte {
	b := f.Bytes()
	return b[:min(n, len(b))]
}

// Section returns a reader over [off, off+n).
func (f *File) Section(off, n int) (*io.SectionReader, error) {
	if f.closed.Load() {
		return nil, ErrClosed
	}
	if off < 0 || n < 0 || off > len(f.data)-n {
		return nil, ErrOutOfBounds
	}
	return io.NewSectionReader(f, int64(off), int64(n)), nil
}

// ReadAt implements io.ReaderAt.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	if f.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, ErrOutOfBounds
	}
	if off >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Advise applies h to [off, off+n). Unaligned ranges are silently ignored
// by the kernel.
func (f *File) Advise(off, n int, h Hint) error {
	if f.closed.Load() {
		return ErrClosed
	}
	if off < 0 || n < 0 || off > len(f.data)-n {
		return ErrOutOfBounds
	}
	return osAdvise(f.data[off:off+n], h)
}

// AdviseAll applies h to the whole mapping.
func (f *File) AdviseAll(h Hint) error {
	return f.Advise(0, len(f.data), h)
}

// Close unmaps the file. Later calls are no-ops.
func (f *File) Close() error {
	if f.closed.Swap(true) || f.unmap == nil {
		return nil
	}
	return f.unmap(f.data)
}
