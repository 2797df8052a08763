package fileio

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/hupe1980/labelvec/internal/mmap"
	"github.com/hupe1980/labelvec/resource"
)

// File reads and writes a label file on the local file system.
type File struct {
	path string
	opts options
}

var (
	_ Reader = (*File)(nil)
	_ Writer = (*File)(nil)
)

// NewFile returns an adapter for path. Without WithFormat, the format is
// guessed from the extension and, on read, sniffed from the content.
func NewFile(path string, opts ...Option) *File {
	o := newOptions(opts)
	if o.format == FormatAuto {
		o.format = FormatFromPath(path)
	}
	return &File{path: path, opts: o}
}

// Path returns the file path.
func (f *File) Path() string { return f.path }

// ReadVector maps the file and decodes it.
func (f *File) ReadVector(ctx context.Context) ([]float64, error) {
	labels, _, err := f.read(ctx)
	return labels, err
}

// Inspect decodes the file and reports its metadata.
func (f *File) Inspect(ctx context.Context) (Info, error) {
	_, info, err := f.read(ctx)
	return info, err
}

// ReadVectorInfo returns the labels together with their metadata from a
// single read.
func (f *File) ReadVectorInfo(ctx context.Context) ([]float64, Info, error) {
	return f.read(ctx)
}

func (f *File) read(ctx context.Context) ([]float64, Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, Info{}, err
	}
	m, err := mmap.Open(f.path)
	if err != nil {
		return nil, Info{}, err
	}
	defer m.Close()

	_ = m.AdviseAll(mmap.HintSequential)
	data := m.Bytes()
	if err := f.opts.rc.AcquireIO(ctx, len(data)); err != nil {
		return nil, Info{}, err
	}

	format := f.opts.format
	if format == FormatAuto {
		format = Sniff(m.Peek(HeaderSize))
	}
	if format == FormatBinary {
		labels, h, err := decodeBinaryBytes(data)
		info := Info{Format: FormatBinary}
		info.setHeader(h)
		info.Count = len(labels)
		return labels, info, err
	}
	o := f.opts
	o.format = format
	return decode(bytes.NewReader(data), o)
}

// WriteVector encodes labels into a temporary file next to the target,
// syncs it and renames it into place.
func (f *File) WriteVector(ctx context.Context, labels []float64) error {
	return saveToFile(ctx, f.path, labels, f.opts)
}

// SaveToFile atomically replaces path with the encoded labels.
// FormatAuto is resolved from the extension, falling back to FormatBinary.
func SaveToFile(ctx context.Context, path string, labels []float64, opts ...Option) error {
	return NewFile(path, opts...).WriteVector(ctx, labels)
}

func saveToFile(ctx context.Context, path string, labels []float64, o options) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = encode(resource.NewRateLimitedWriter(ctx, tmp, o.rc), labels, o); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
