package labelvec

import "github.com/hupe1980/labelvec/internal/conv"

// IntLabel returns the label at idx as an int32. Index rules are those of
// Label. A value that is not an exact int32 yields a *FormatError.
func (d *DenseLabels) IntLabel(idx int) (int32, error) {
	v := d.labels[d.physical("IntLabel", idx)]
	i, ok := conv.Float64ToInt32(v)
	if !ok {
		return 0, &FormatError{Index: idx, Value: v}
	}
	return i, nil
}

// SetIntLabel writes v at idx with the rules of SetLabel.
func (d *DenseLabels) SetIntLabel(idx int, v int32) bool {
	return d.set("SetIntLabel", idx, float64(v))
}

// IntLabels converts every logical label in ascending order and stops at
// the first *FormatError.
func (d *DenseLabels) IntLabels() ([]int32, error) {
	out := make([]int32, d.NumLabels())
	for i := range out {
		v, err := d.IntLabel(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// SetIntLabels reallocates storage to len(labels) and writes each value.
func (d *DenseLabels) SetIntLabels(labels []int32) error {
	if d.view.HasSubset() {
		return &InvalidStateError{Op: "SetIntLabels"}
	}
	d.labels = make([]float64, len(labels))
	for i, v := range labels {
		d.SetIntLabel(i, v)
	}
	return nil
}
