package labelvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/labelvec/subset"
	"github.com/hupe1980/labelvec/testutil"
)

// newSubsetted returns a store over storage and the view that controls it.
func newSubsetted(t *testing.T, storage []float64) (*DenseLabels, *subset.Active) {
	t.Helper()
	view := subset.NewActive()
	d := New(0, WithView(view))
	require.NoError(t, d.SetLabels(storage))
	return d, view
}

func requirePrecondition(t *testing.T, fn func()) *PreconditionError {
	t.Helper()
	var pe *PreconditionError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic")
			var ok bool
			pe, ok = r.(*PreconditionError)
			require.True(t, ok, "panic value %T", r)
		}()
		fn()
	}()
	return pe
}

func TestNew(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000} {
		d := New(n)
		assert.Equal(t, n, d.NumLabels())
		assert.False(t, d.View().HasSubset())
		for _, v := range d.LabelsCopy() {
			assert.Equal(t, 0.0, v)
		}
	}

	pe := requirePrecondition(t, func() { New(-1) })
	assert.ErrorIs(t, pe, ErrPrecondition)
}

func TestSetLabels_RoundTrip(t *testing.T) {
	v := testutil.NewRNG(7).Float64s(50)
	d := New(0)
	require.NoError(t, d.SetLabels(v))

	got, err := d.Labels()
	require.NoError(t, err)
	assert.Equal(t, v, got)
	assert.Equal(t, 50, d.NumLabels())

	// Storage is shared, not copied.
	got[0] = 42
	assert.Equal(t, 42.0, d.Label(0))
}

func TestSetLabels_Validation(t *testing.T) {
	d := New(0)
	require.NoError(t, d.SetLabels([]float64{1, 2}))

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := d.SetLabels([]float64{0, bad})
		assert.ErrorIs(t, err, ErrInvalidLabels)
	}

	// Rejected vectors leave storage untouched.
	got, err := d.Labels()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)
	assert.True(t, d.IsValid())

	require.NoError(t, d.SetLabels(nil))
	assert.Equal(t, 0, d.NumLabels())
}

func TestZeroAndOne(t *testing.T) {
	d := New(5)
	d.SetToOne()
	for i := range d.NumLabels() {
		assert.Equal(t, 1.0, d.Label(i))
	}
	d.Zero()
	for i := range d.NumLabels() {
		assert.Equal(t, 0.0, d.Label(i))
	}
	d.SetToConst(-3.5)
	assert.Equal(t, []float64{-3.5, -3.5, -3.5, -3.5, -3.5}, d.LabelsCopy())

	requirePrecondition(t, func() { New(0).SetToOne() })
}

func TestSetToConst_UnderSubset(t *testing.T) {
	d, view := newSubsetted(t, []float64{10, 20, 30, 40})
	view.Set(subset.Indices{0, 2})
	d.SetToConst(7)
	view.Clear()

	got, err := d.Labels()
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 20, 7, 40}, got)
}

func TestIntLabels_RoundTrip(t *testing.T) {
	in := testutil.NewRNG(3).IntLabels(100, 10)
	in = append(in, math.MaxInt32, math.MinInt32, -1)

	d := New(0)
	require.NoError(t, d.SetIntLabels(in))
	assert.Equal(t, len(in), d.NumLabels())

	got, err := d.IntLabels()
	require.NoError(t, err)
	assert.Equal(t, in, got)

	v, err := d.IntLabel(len(in) - 1)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v)
}

func TestIntLabel_FormatError(t *testing.T) {
	d := New(4)
	require.True(t, d.SetLabel(2, 2.5))

	_, err := d.IntLabel(2)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 2, fe.Index)
	assert.Equal(t, 2.5, fe.Value)
	assert.ErrorIs(t, err, ErrFormat)

	_, err = d.IntLabels()
	assert.ErrorIs(t, err, ErrFormat)

	// Storage is not corrupted.
	assert.Equal(t, 2.5, d.Label(2))

	for _, v := range []float64{math.NaN(), math.Inf(1), 1e10, math.MaxInt32 + 1} {
		require.True(t, d.SetLabel(0, v))
		_, err := d.IntLabel(0)
		assert.ErrorIs(t, err, ErrFormat, "%v", v)
	}
}

func TestSetIntLabel(t *testing.T) {
	d := New(3)
	assert.True(t, d.SetIntLabel(1, 9))
	assert.Equal(t, 9.0, d.Label(1))
	assert.False(t, d.SetIntLabel(3, 1))
}

func TestIntLabels_UnderSubset(t *testing.T) {
	d, view := newSubsetted(t, []float64{10, 20, 30, 40})
	view.Set(subset.Indices{1, 3})

	got, err := d.IntLabels()
	require.NoError(t, err)
	assert.Equal(t, []int32{20, 40}, got)

	v, err := d.IntLabel(1)
	require.NoError(t, err)
	assert.Equal(t, int32(40), v)

	require.True(t, d.SetIntLabel(0, 7))
	assert.False(t, d.SetIntLabel(2, 1))

	view.Clear()
	storage, err := d.Labels()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 7, 30, 40}, storage)
}

func TestSubsetIsolation(t *testing.T) {
	d, view := newSubsetted(t, []float64{10, 20, 30, 40})
	view.Set(subset.Indices{1, 3})

	assert.Equal(t, 2, d.NumLabels())
	assert.Equal(t, 20.0, d.Label(0))
	assert.Equal(t, 40.0, d.Label(1))

	_, err := d.Labels()
	var ise *InvalidStateError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, "Labels", ise.Op)
	assert.ErrorIs(t, err, ErrInvalidState)

	assert.ErrorIs(t, d.SetLabels([]float64{1}), ErrInvalidState)
	assert.ErrorIs(t, d.SetIntLabels([]int32{1}), ErrInvalidState)

	// Writes go through the view.
	require.True(t, d.SetLabel(1, 41))
	view.Clear()
	got, err := d.Labels()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 41}, got)
}

func TestLabel_Preconditions(t *testing.T) {
	d, view := newSubsetted(t, []float64{10, 20, 30, 40})

	pe := requirePrecondition(t, func() { d.Label(4) })
	assert.Equal(t, 4, pe.Index)
	assert.Equal(t, 4, pe.Len)
	requirePrecondition(t, func() { d.Label(-1) })

	view.Set(subset.Indices{1, 3})
	pe = requirePrecondition(t, func() { d.Label(2) })
	assert.Equal(t, 2, pe.Len)
	requirePrecondition(t, func() { _, _ = d.IntLabel(2) })

	requirePrecondition(t, func() { New(0).Label(0) })
}

func TestSetLabel_OutOfBoundsSoftFailure(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	view := subset.NewActive()
	d := New(0, WithView(view), WithMetrics(metrics))
	require.NoError(t, d.SetLabels([]float64{10, 20, 30, 40}))

	assert.False(t, d.SetLabel(4, 1))
	assert.False(t, d.SetLabel(-1, 1))

	// Logical index 1 is in range but maps outside storage.
	view.Set(subset.Indices{1, 7})
	assert.False(t, d.SetLabel(1, 99))
	// Past the end of the selection.
	assert.False(t, d.SetLabel(2, 99))
	// Label asserts on the same translated offset.
	requirePrecondition(t, func() { d.Label(1) })

	view.Clear()
	got, err := d.Labels()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 40}, got)

	assert.False(t, New(0).SetLabel(0, 1))
	assert.Equal(t, int64(4), metrics.GetStats().SoftFailures)
}

// reversed is a permuting view whose logical length exceeds what SetLabel
// can reach, exercising the translated-offset check.
type reversed struct {
	n int
}

func (r reversed) HasSubset() bool     { return true }
func (r reversed) Convert(idx int) int { return r.n - 1 - idx }
func (r reversed) Size() int           { return r.n }
func (r reversed) Clear()              {}

func TestSetLabel_ChecksPhysicalOffset(t *testing.T) {
	d := New(0)
	require.NoError(t, d.SetLabels([]float64{1, 2, 3}))
	d.view = reversed{n: 3}

	assert.Equal(t, 3.0, d.Label(0))
	assert.True(t, d.SetLabel(0, 30))
	// -1 maps to offset 3, outside storage.
	assert.False(t, d.SetLabel(-1, 0))
	// 3 is outside the logical range but maps to -1.
	assert.False(t, d.SetLabel(3, 0))
	assert.Equal(t, []float64{30, 2, 1}, d.LabelsCopy())
}

func TestLabelsCopy_UnderSubset(t *testing.T) {
	d, view := newSubsetted(t, []float64{10, 20, 30, 40})
	view.Set(subset.Indices{3, 0, 3})

	cp := d.LabelsCopy()
	assert.Equal(t, []float64{40, 10, 40}, cp)
	for i, v := range cp {
		assert.Equal(t, d.Label(i), v)
	}

	// Independent of the source.
	require.True(t, d.SetLabel(0, -1))
	assert.Equal(t, 40.0, cp[0])
	cp[1] = 0
	assert.Equal(t, 10.0, d.Label(1))
}

func TestLabelsCopy_NoSubset(t *testing.T) {
	d := New(0)
	require.NoError(t, d.SetLabels([]float64{1, 2}))
	cp := d.LabelsCopy()
	cp[0] = 5
	assert.Equal(t, 1.0, d.Label(0))

	assert.NotNil(t, New(0).LabelsCopy())
}

func TestBitmapView(t *testing.T) {
	d, view := newSubsetted(t, []float64{0, 1, 2, 3, 4, 5})
	bm := subset.NewBitmap(5, 1, 3)
	view.Set(bm)

	assert.Equal(t, 3, d.NumLabels())
	assert.Equal(t, []float64{1, 3, 5}, d.LabelsCopy())

	// The view is re-queried on every call.
	bm.Add(0)
	assert.Equal(t, []float64{0, 1, 3, 5}, d.LabelsCopy())

	view.Set(subset.Range{Start: 2, Count: 2})
	assert.Equal(t, []float64{2, 3}, d.LabelsCopy())
}

func TestAll(t *testing.T) {
	d, view := newSubsetted(t, []float64{10, 20, 30, 40})
	view.Set(subset.Indices{2, 0})

	var idx []int
	var vals []float64
	for i, v := range d.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, []float64{30, 10}, vals)

	n := 0
	for range d.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)

	for range New(0).All() {
		t.Fatal("empty store yielded a label")
	}
}

func TestClone(t *testing.T) {
	d, view := newSubsetted(t, []float64{1, 2, 3})
	c := d.Clone()
	assert.Same(t, view, c.View())

	require.True(t, c.SetLabel(0, 100))
	assert.Equal(t, 1.0, d.Label(0))
	assert.Equal(t, 100.0, c.Label(0))
}

func TestValidate(t *testing.T) {
	d := New(2)
	assert.True(t, d.IsValid())
	require.True(t, d.SetLabel(1, math.NaN()))
	assert.False(t, d.IsValid())
	assert.ErrorIs(t, d.Validate(), ErrInvalidLabels)
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&InvalidStateError{Op: "Save"}).Error(), "Save")
	assert.Contains(t, (&PreconditionError{Op: "Label", Index: 5, Len: 2}).Error(), "index 5 out of range [0, 2)")
	assert.Contains(t, (&PreconditionError{Op: "Save", Reason: "empty label storage"}).Error(), "empty label storage")
	assert.Contains(t, (&FormatError{Index: 1, Value: 2.5}).Error(), "2.5")
}
