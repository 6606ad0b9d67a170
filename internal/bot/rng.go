package bot

import "math/rand/v2"

// newRNG returns a solver-local randomness source. The default is
// seeded from the global source; tests use seededRNG for reproducible
// runs.
func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func seededRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
