package stats

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used by the stochastic steps.
// *rand.Rand from math/rand/v2 satisfies it. Implementations need not be safe for
// concurrent use; give each goroutine its own.
type Rand interface {
	// IntN returns a uniform integer in [0,n).
	IntN(n int) int
}

// NewRand returns a PCG-backed source. A zero seed is replaced by the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IntBetween returns a uniform integer in [lo,hi], both inclusive.
func IntBetween(rng Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
