package predictor

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when Options.Seed==0, kept
// arbitrary but stable so default runs stay reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed==0 selects
// defaultRNGSeed; any other value is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// chooseMultiple returns a random sample of k distinct indices from
// [0, n), without replacement. Used to pick the non-extremal members of a
// bin once the one at the largest error has already been chosen.
func chooseMultiple(rng *rand.Rand, n, k int) []int {
	if k > n {
		k = n
	}
	perm := rng.Perm(n)
	return perm[:k]
}
