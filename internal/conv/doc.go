// Package conv provides checked numeric conversions.
//
// Counts read from label file headers are untrusted and go through the
// checked integer helpers. Float64ToInt32 implements the exact-integer test
// used for integer label access.
package conv
