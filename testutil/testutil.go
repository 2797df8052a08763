package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// RNG is a seeded, thread-safe random source.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates an RNG with the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // fixtures only
		seed: seed,
	}
}

// Reset rewinds the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a value in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64s returns n values in [0, 1).
func (r *RNG) Float64s(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		out[i] = r.rand.Float64()
	}
	return out
}

// Binary returns n labels drawn from {-1, +1}.
func (r *RNG) Binary(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		if r.rand.Intn(2) == 0 {
			out[i] = -1
		} else {
			out[i] = 1
		}
	}
	return out
}

// IntLabels returns n class ids in [0, classes).
func (r *RNG) IntLabels(n, classes int) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(r.rand.Intn(classes)) //nolint:gosec // classes is small in fixtures
	}
	return out
}

// Indices returns k distinct offsets in [0, n), sorted ascending.
func (r *RNG) Indices(n, k int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	k = min(k, n)
	out := r.rand.Perm(n)[:k]
	sort.Ints(out)
	return out
}
