package randx

import (
	"math/rand"

	"github.com/seehuhn/mt19937"
)

// NewMt19937 returns a *rand.Rand over an MT19937 source seeded with seed.
func NewMt19937(seed int64) *rand.Rand {
	src := mt19937.New()
	src.Seed(seed)
	return rand.New(src)
}

// UnitState binarizes an activation probability into a 0/1 unit state.
func UnitState(p float64, rng *rand.Rand) float64 {
	if rng.Float64() < p {
		return 1.0
	}
	return 0.0
}
