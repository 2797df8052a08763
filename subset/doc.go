// Package subset provides the logical views that restrict a dense label vector
// to a selection of its examples without copying the underlying storage.
//
// A View translates a logical index (as seen by the caller) into a physical
// offset in storage. The Active holder is the usual implementation: it is
// either empty (identity mapping) or carries exactly one Selection.
//
//	active := subset.NewActive()
//	active.Set(subset.Indices{1, 3})
//	active.Convert(0) // 1
//	active.Size()     // 2
//
// Built-in selections:
//
//   - Indices: an explicit list of physical offsets (any order, repeats allowed)
//   - Range: a contiguous window of storage
//   - Bitmap: a sorted selection backed by a Roaring bitmap
package subset
