package subset

// View maps logical indices onto physical storage offsets.
//
// Implementations must be deterministic for a fixed state: the same logical
// index yields the same offset until the view is mutated.
type View interface {
	// HasSubset reports whether a non-trivial restriction is active.
	HasSubset() bool
	// Convert returns the physical offset for a logical index.
	// Indices outside the selection map to -1.
	Convert(idx int) int
	// Size returns the number of logically visible elements.
	// It is only meaningful while HasSubset reports true.
	Size() int
	// Clear drops any active restriction.
	Clear()
}

// Selection is an ordered list of physical offsets.
type Selection interface {
	// Len returns the number of selected offsets.
	Len() int
	// Physical returns the i-th selected offset, or -1 if i is out of range.
	Physical(i int) int
}

// Identity is a View that never restricts anything.
type Identity struct{}

// HasSubset always reports false.
func (Identity) HasSubset() bool { return false }

// Convert returns idx unchanged.
func (Identity) Convert(idx int) int { return idx }

// Size always returns 0; callers use the physical length instead.
func (Identity) Size() int { return 0 }

// Clear is a no-op.
func (Identity) Clear() {}

// Active holds the currently active selection, if any.
//
// It is owned by whoever builds the label store and may be mutated between
// calls; stores re-query it on every access.
type Active struct {
	sel Selection
}

// NewActive returns an Active with no selection.
func NewActive() *Active {
	return &Active{}
}

// Set activates sel. A nil selection, including a nil *Bitmap, clears the view.
func (a *Active) Set(sel Selection) {
	if b, ok := sel.(*Bitmap); ok && b == nil {
		sel = nil
	}
	a.sel = sel
}

// Selection returns the active selection or nil.
func (a *Active) Selection() Selection {
	return a.sel
}

// HasSubset implements View.
func (a *Active) HasSubset() bool {
	return a.sel != nil
}

// Convert implements View.
func (a *Active) Convert(idx int) int {
	if a.sel == nil {
		return idx
	}
	return a.sel.Physical(idx)
}

// Size implements View.
func (a *Active) Size() int {
	if a.sel == nil {
		return 0
	}
	return a.sel.Len()
}

// Clear implements View.
func (a *Active) Clear() {
	a.sel = nil
}
