package subset

// Indices selects an explicit list of physical offsets.
// Order is preserved, so Indices can also permute or repeat examples.
type Indices []int

// Len implements Selection.
func (s Indices) Len() int { return len(s) }

// Physical implements Selection.
func (s Indices) Physical(i int) int {
	if i < 0 || i >= len(s) {
		return -1
	}
	return s[i]
}

// Range selects Count contiguous offsets starting at Start.
type Range struct {
	Start int
	Count int
}

// Len implements Selection.
func (r Range) Len() int {
	if r.Count < 0 {
		return 0
	}
	return r.Count
}

// Physical implements Selection.
func (r Range) Physical(i int) int {
	if i < 0 || i >= r.Len() {
		return -1
	}
	return r.Start + i
}
