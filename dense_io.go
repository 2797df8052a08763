package labelvec

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/labelvec/fileio"
)

// NewFromReader builds a store and loads it from r.
func NewFromReader(ctx context.Context, r fileio.Reader, opts ...Option) (*DenseLabels, error) {
	d := newDenseLabels(opts)
	d.labels = []float64{}
	if err := d.Load(ctx, r); err != nil {
		return nil, err
	}
	return d, nil
}

// Load clears the view, then replaces the storage with what r produces.
// If r fails the storage is left as it was.
func (d *DenseLabels) Load(ctx context.Context, r fileio.Reader) error {
	d.view.Clear()

	start := time.Now()
	labels, err := r.ReadVector(ctx)
	d.metrics.RecordLoad(len(labels), time.Since(start), err)
	d.logger.LogLoad(ctx, len(labels), err)
	if err != nil {
		return fmt.Errorf("load labels: %w", err)
	}

	if labels == nil {
		labels = []float64{}
	}
	d.labels = labels
	return nil
}

// Save writes the full physical storage to w. It fails with an
// *InvalidStateError under a subset and a *PreconditionError when empty.
func (d *DenseLabels) Save(ctx context.Context, w fileio.Writer) error {
	if d.view.HasSubset() {
		return &InvalidStateError{Op: "Save"}
	}
	if len(d.labels) == 0 {
		return &PreconditionError{Op: "Save", Reason: "empty label storage"}
	}

	start := time.Now()
	err := w.WriteVector(ctx, d.labels)
	d.metrics.RecordSave(len(d.labels), time.Since(start), err)
	d.logger.LogSave(ctx, len(d.labels), err)
	if err != nil {
		return fmt.Errorf("save labels: %w", err)
	}
	return nil
}
