package testutil

import "math/rand/v2"

// NewSeededRand returns a PCG-backed source whose output depends only on
// seed. Use it wherever a test needs reproducible integer generation.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
