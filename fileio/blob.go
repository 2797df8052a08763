package fileio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/labelvec/blobstore"
	"github.com/hupe1980/labelvec/resource"
)

// Blob reads and writes a label file stored under a name in a BlobStore.
type Blob struct {
	store blobstore.BlobStore
	name  string
	opts  options
}

var (
	_ Reader = (*Blob)(nil)
	_ Writer = (*Blob)(nil)
)

// NewBlob returns an adapter for name in store.
func NewBlob(store blobstore.BlobStore, name string, opts ...Option) *Blob {
	o := newOptions(opts)
	if o.format == FormatAuto {
		o.format = FormatFromPath(name)
	}
	return &Blob{store: store, name: name, opts: o}
}

// Name returns the blob name.
func (b *Blob) Name() string { return b.name }

// Delete removes the blob. A missing blob is not an error.
func (b *Blob) Delete(ctx context.Context) error {
	if err := b.store.Delete(ctx, b.name); err != nil {
		return fmt.Errorf("fileio: delete blob %s: %w", b.name, err)
	}
	return nil
}

func (b *Blob) ReadVector(ctx context.Context) ([]float64, error) {
	labels, _, err := b.read(ctx)
	return labels, err
}

// Inspect decodes the blob and reports its metadata.
func (b *Blob) Inspect(ctx context.Context) (Info, error) {
	_, info, err := b.read(ctx)
	return info, err
}

// ReadVectorInfo returns the labels together with their metadata from a
// single read.
func (b *Blob) ReadVectorInfo(ctx context.Context) ([]float64, Info, error) {
	return b.read(ctx)
}

func (b *Blob) read(ctx context.Context) ([]float64, Info, error) {
	blob, err := b.store.Open(ctx, b.name)
	if err != nil {
		return nil, Info{}, fmt.Errorf("fileio: open blob %s: %w", b.name, err)
	}
	defer blob.Close()

	var r io.Reader
	if m, ok := blob.(blobstore.Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, Info{}, err
		}
		if err := b.opts.rc.AcquireIO(ctx, len(data)); err != nil {
			return nil, Info{}, err
		}
		r = bytes.NewReader(data)
	} else {
		rc, err := blob.ReadRange(ctx, 0, blob.Size())
		if err != nil {
			return nil, Info{}, err
		}
		defer rc.Close()
		r = resource.NewRateLimitedReader(ctx, rc, b.opts.rc)
	}
	return decode(r, b.opts)
}

// putThreshold is the raw payload size up to which a blob is encoded in
// memory and written with a single Put.
const putThreshold = 1 << 20

// WriteVector writes the encoded labels. Small vectors go out in one Put;
// larger ones are streamed and the partial blob is aborted on failure.
func (b *Blob) WriteVector(ctx context.Context, labels []float64) error {
	if 8*len(labels) <= putThreshold {
		var buf bytes.Buffer
		if err := encode(&buf, labels, b.opts); err != nil {
			return err
		}
		if err := b.opts.rc.AcquireIO(ctx, buf.Len()); err != nil {
			return err
		}
		if err := b.store.Put(ctx, b.name, buf.Bytes()); err != nil {
			return fmt.Errorf("fileio: put blob %s: %w", b.name, err)
		}
		return nil
	}

	w, err := b.store.Create(ctx, b.name)
	if err != nil {
		return fmt.Errorf("fileio: create blob %s: %w", b.name, err)
	}
	if err := encode(resource.NewRateLimitedWriter(ctx, w, b.opts.rc), labels, b.opts); err != nil {
		_ = w.Abort()
		return err
	}
	return w.Close()
}
