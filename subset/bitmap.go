package subset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a sorted Selection backed by a Roaring bitmap.
// Logical index i maps to the i-th smallest offset in the set.
// A nil *Bitmap reads as empty.
type Bitmap struct {
	rb *roaring.Bitmap
}

// NewBitmap creates a bitmap selection holding the given offsets.
func NewBitmap(offsets ...uint32) *Bitmap {
	return &Bitmap{
		rb: roaring.BitmapOf(offsets...),
	}
}

// FromRoaring wraps an existing Roaring bitmap. The bitmap is not copied.
func FromRoaring(rb *roaring.Bitmap) *Bitmap {
	if rb == nil {
		rb = roaring.New()
	}
	return &Bitmap{rb: rb}
}

// Add adds an offset to the selection.
func (b *Bitmap) Add(offset uint32) {
	b.rb.Add(offset)
}

// AddRange adds offsets in [start, end).
func (b *Bitmap) AddRange(start, end uint64) {
	b.rb.AddRange(start, end)
}

// Remove removes an offset from the selection.
func (b *Bitmap) Remove(offset uint32) {
	b.rb.Remove(offset)
}

// Contains reports whether offset is selected.
func (b *Bitmap) Contains(offset uint32) bool {
	return b != nil && b.rb.Contains(offset)
}

// Len implements Selection.
func (b *Bitmap) Len() int {
	if b == nil {
		return 0
	}
	return int(b.rb.GetCardinality())
}

// Physical implements Selection.
func (b *Bitmap) Physical(i int) int {
	if b == nil || i < 0 || uint64(i) >= b.rb.GetCardinality() {
		return -1
	}
	v, err := b.rb.Select(uint32(i))
	if err != nil {
		return -1
	}
	return int(v)
}

// And intersects the selection with other.
func (b *Bitmap) And(other *Bitmap) {
	b.rb.And(other.rb)
}

// Or unions the selection with other.
func (b *Bitmap) Or(other *Bitmap) {
	b.rb.Or(other.rb)
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{rb: b.rb.Clone()}
}

// Offsets iterates over the selected offsets in ascending order.
func (b *Bitmap) Offsets() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
