package core

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a deterministic PCG-backed generator for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FreshSeed returns a non-zero seed derived from the wall clock. Zero is
// reserved for the pattern seed of the life sim.
func FreshSeed() int64 {
	seed := time.Now().UnixNano()
	if seed == 0 {
		seed = 1
	}
	return seed
}
