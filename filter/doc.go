// Package filter turns boolean expressions over labels into subset selections.
//
// An expression sees two variables: label (the float64 value) and index (its
// physical offset). Two engines are available:
//
//	p, err := filter.Compile(filter.EngineExpr, "label > 0 && index % 2 == 0")
//	p, err := filter.Compile(filter.EngineCEL, "label > 0.0 && index % 2 == 0")
//
// Select evaluates a predicate over a label vector and returns the matching
// offsets as a Roaring bitmap, ready to be activated on a subset.Active view.
package filter
