package instgen

import "math/rand"

// defaultRNGSeed mirrors tsp/rng.go and predictor/rng.go's convention: an
// arbitrary but stable seed selected whenever the caller passes 0.
const defaultRNGSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
