package randsrc

import "math/rand"

// Source supplies jitter values for Interleave's fast-limit randomization.
// Intn returns a pseudo-random, non-negative int strictly less than
// exclusiveEnd, which is always > 0 when called by this module.
type Source interface {
	Intn(exclusiveEnd int) int
}

// DefaultSeed is the fixed seed used when a caller passes seed == 0.
// Arbitrary but stable, so that "no seed supplied" still yields
// reproducible behavior across runs — matching tsp/rng.go's policy.
const DefaultSeed int64 = 1

// mathRandSource adapts *rand.Rand to Source.
type mathRandSource struct {
	r *rand.Rand
}

// Intn delegates to the wrapped *rand.Rand. math/rand.Rand is not
// goroutine-safe; a Source returned by Default must not be shared across
// goroutines without external synchronization.
func (s mathRandSource) Intn(exclusiveEnd int) int {
	return s.r.Intn(exclusiveEnd)
}

// Default returns a deterministic Source seeded from seed, or from
// DefaultSeed when seed == 0.
func Default(seed int64) Source {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return mathRandSource{r: rand.New(rand.NewSource(s))}
}

// Derive mixes a parent seed and a stream identifier into a new 64-bit
// seed, using the canonical SplitMix64 finalizer for strong bit diffusion:
// small changes in parent or stream produce large, well-distributed
// changes in the result. Ported from tsp/rng.go's deriveSeed.
func Derive(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
