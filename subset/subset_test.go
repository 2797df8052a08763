package subset

import (
	"slices"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActive(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		a := NewActive()
		assert.False(t, a.HasSubset())
		assert.Equal(t, 7, a.Convert(7))
		assert.Equal(t, 0, a.Size())
		assert.Nil(t, a.Selection())
	})

	t.Run("SetAndClear", func(t *testing.T) {
		a := NewActive()
		a.Set(Indices{1, 3})
		require.True(t, a.HasSubset())
		assert.Equal(t, 2, a.Size())
		assert.Equal(t, 1, a.Convert(0))
		assert.Equal(t, 3, a.Convert(1))
		assert.Equal(t, -1, a.Convert(2))

		a.Clear()
		assert.False(t, a.HasSubset())
		assert.Equal(t, 2, a.Convert(2))
	})

	t.Run("SetNil", func(t *testing.T) {
		a := NewActive()
		a.Set(Range{Start: 2, Count: 2})
		a.Set(nil)
		assert.False(t, a.HasSubset())
	})

	t.Run("SetNilBitmap", func(t *testing.T) {
		a := NewActive()
		a.Set(Indices{1})
		var b *Bitmap
		a.Set(b)
		assert.False(t, a.HasSubset())
		assert.Equal(t, 0, a.Size())
		assert.Equal(t, 3, a.Convert(3))
	})
}

func TestIdentity(t *testing.T) {
	var v View = Identity{}
	assert.False(t, v.HasSubset())
	assert.Equal(t, 42, v.Convert(42))
	v.Clear()
	assert.False(t, v.HasSubset())
}

func TestIndices(t *testing.T) {
	s := Indices{3, 0, 3}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Physical(0))
	assert.Equal(t, 0, s.Physical(1))
	assert.Equal(t, 3, s.Physical(2))
	assert.Equal(t, -1, s.Physical(3))
	assert.Equal(t, -1, s.Physical(-1))
}

func TestRange(t *testing.T) {
	r := Range{Start: 10, Count: 3}
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 10, r.Physical(0))
	assert.Equal(t, 12, r.Physical(2))
	assert.Equal(t, -1, r.Physical(3))

	assert.Equal(t, 0, Range{Start: 1, Count: -4}.Len())
}

func TestBitmap(t *testing.T) {
	b := NewBitmap(9, 2, 5)
	require.Equal(t, 3, b.Len())

	// Logical order follows ascending offsets.
	assert.Equal(t, 2, b.Physical(0))
	assert.Equal(t, 5, b.Physical(1))
	assert.Equal(t, 9, b.Physical(2))
	assert.Equal(t, -1, b.Physical(3))
	assert.Equal(t, -1, b.Physical(-1))

	b.Add(0)
	assert.Equal(t, 0, b.Physical(0))
	assert.True(t, b.Contains(0))

	b.Remove(9)
	assert.False(t, b.Contains(9))
	assert.Equal(t, []int{0, 2, 5}, slices.Collect(b.Offsets()))
}

func TestBitmap_SetOps(t *testing.T) {
	a := NewBitmap()
	a.AddRange(0, 6)
	other := NewBitmap(1, 3, 5, 7)

	and := a.Clone()
	and.And(other)
	assert.Equal(t, []int{1, 3, 5}, slices.Collect(and.Offsets()))

	or := a.Clone()
	or.Or(other)
	assert.Equal(t, 7, or.Len())

	// Clone is independent of its source.
	assert.Equal(t, 6, a.Len())
}

func TestBitmap_Nil(t *testing.T) {
	var b *Bitmap
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, -1, b.Physical(0))
	assert.False(t, b.Contains(0))
}

func TestFromRoaring(t *testing.T) {
	rb := roaring.BitmapOf(4, 8)
	b := FromRoaring(rb)
	assert.Equal(t, 8, b.Physical(1))

	empty := FromRoaring(nil)
	assert.Equal(t, 0, empty.Len())

	a := NewActive()
	a.Set(b)
	assert.Equal(t, 2, a.Size())
	assert.Equal(t, 4, a.Convert(0))
}
