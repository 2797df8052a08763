// Package testutil generates label fixtures for tests and examples.
//
// # Random Labels
//
//	rng := testutil.NewRNG(seed)
//	reg := rng.Float64s(100)        // regression targets in [0, 1)
//	bin := rng.Binary(100)          // -1 / +1
//	cls := rng.IntLabels(100, 5)    // class ids in [0, 5)
//	sel := rng.Indices(100, 10)     // 10 distinct offsets in [0, 100)
package testutil
