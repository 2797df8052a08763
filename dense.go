package labelvec

import (
	"fmt"
	"iter"
	"math"

	"github.com/hupe1980/labelvec/subset"
)

// DenseLabels is a float64 label per example behind a subset view.
//
// Logical indices are translated through the view on every access; the
// view is never cached.
type DenseLabels struct {
	labels  []float64
	view    subset.View
	logger  *Logger
	metrics MetricsCollector
}

func newDenseLabels(opts []Option) *DenseLabels {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.view == nil {
		o.view = subset.NewActive()
	}
	return &DenseLabels{
		view:    o.view,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// New returns a store of size zero-valued labels. It panics with a
// *PreconditionError if size is negative.
func New(size int, opts ...Option) *DenseLabels {
	if size < 0 {
		panic(&PreconditionError{Op: "New", Index: size, Reason: fmt.Sprintf("negative size %d", size)})
	}
	d := newDenseLabels(opts)
	d.labels = make([]float64, size)
	return d
}

// View returns the injected subset view.
func (d *DenseLabels) View() subset.View { return d.view }

// NumLabels returns the logical length: the view size under a subset,
// otherwise the physical length.
func (d *DenseLabels) NumLabels() int {
	if d.view.HasSubset() {
		return d.view.Size()
	}
	return len(d.labels)
}

// SetLabels replaces the storage with labels, which the store then owns.
// The vector is validated first, so a rejected vector changes nothing.
func (d *DenseLabels) SetLabels(labels []float64) error {
	if d.view.HasSubset() {
		return &InvalidStateError{Op: "SetLabels"}
	}
	if err := validate(labels); err != nil {
		return err
	}
	if labels == nil {
		labels = []float64{}
	}
	d.labels = labels
	return nil
}

// Labels returns the storage itself. The caller must not assume exclusive
// ownership.
func (d *DenseLabels) Labels() ([]float64, error) {
	if d.view.HasSubset() {
		return nil, &InvalidStateError{Op: "Labels"}
	}
	return d.labels, nil
}

// LabelsCopy returns a fresh copy of the logically visible labels.
func (d *DenseLabels) LabelsCopy() []float64 {
	if !d.view.HasSubset() {
		out := make([]float64, len(d.labels))
		copy(out, d.labels)
		return out
	}
	out := make([]float64, d.NumLabels())
	for i := range out {
		out[i] = d.Label(i)
	}
	return out
}

// physical checks idx against the logical range and returns its storage
// offset. Violations panic.
func (d *DenseLabels) physical(op string, idx int) int {
	if len(d.labels) == 0 {
		panic(&PreconditionError{Op: op, Index: idx, Reason: "empty label storage"})
	}
	n := d.NumLabels()
	if idx < 0 || idx >= n {
		panic(&PreconditionError{Op: op, Index: idx, Len: n})
	}
	p := d.view.Convert(idx)
	if p < 0 || p >= len(d.labels) {
		panic(&PreconditionError{
			Op:     op,
			Index:  idx,
			Len:    n,
			Reason: fmt.Sprintf("index %d maps to offset %d outside storage of length %d", idx, p, len(d.labels)),
		})
	}
	return p
}

// Label returns the label at logical index idx. It panics with a
// *PreconditionError on empty storage or an index outside [0, NumLabels()).
func (d *DenseLabels) Label(idx int) float64 {
	return d.labels[d.physical("Label", idx)]
}

// SetLabel writes v at logical index idx. It reports false, leaving storage
// untouched, when storage is empty or idx translates to an offset outside the
// physical storage.
func (d *DenseLabels) SetLabel(idx int, v float64) bool {
	return d.set("SetLabel", idx, v)
}

// set bounds-checks the translated offset, not the logical index.
func (d *DenseLabels) set(op string, idx int, v float64) bool {
	p := d.view.Convert(idx)
	if len(d.labels) == 0 || p < 0 || p >= len(d.labels) {
		d.logger.LogSoftFailure(op, idx, p, len(d.labels))
		d.metrics.RecordSoftFailure(op)
		return false
	}
	d.labels[p] = v
	return true
}

// SetToConst writes c at every logical index. It panics on empty storage.
func (d *DenseLabels) SetToConst(c float64) {
	if len(d.labels) == 0 {
		panic(&PreconditionError{Op: "SetToConst", Reason: "empty label storage"})
	}
	n := d.NumLabels()
	for i := 0; i < n; i++ {
		d.labels[d.physical("SetToConst", i)] = c
	}
}

// SetToOne sets every logical label to 1.
func (d *DenseLabels) SetToOne() { d.SetToConst(1) }

// Zero sets every logical label to 0.
func (d *DenseLabels) Zero() { d.SetToConst(0) }

// All iterates over logical index and label pairs.
func (d *DenseLabels) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		n := d.NumLabels()
		for i := 0; i < n; i++ {
			if !yield(i, d.Label(i)) {
				return
			}
		}
	}
}

// Clone returns a store with a copy of the physical storage that shares the
// view, logger and metrics collector.
func (d *DenseLabels) Clone() *DenseLabels {
	labels := make([]float64, len(d.labels))
	copy(labels, d.labels)
	return &DenseLabels{
		labels:  labels,
		view:    d.view,
		logger:  d.logger,
		metrics: d.metrics,
	}
}

// IsValid reports whether every stored label is finite.
func (d *DenseLabels) IsValid() bool {
	return d.Validate() == nil
}

// Validate returns an error wrapping ErrInvalidLabels for the first label
// that is NaN or infinite.
func (d *DenseLabels) Validate() error {
	return validate(d.labels)
}

func validate(labels []float64) error {
	for i, v := range labels {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: label %d is %v", ErrInvalidLabels, i, v)
		}
	}
	return nil
}
