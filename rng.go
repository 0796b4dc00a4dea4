package poisson

import "math/rand"

// Source is the random surface an Algorithm draws on. It is satisfied by
// *rand.Rand, so callers can seed their own stream and pass it to Build;
// the generator takes exclusive ownership of it for its lifetime.
//
// Source is deliberately the only external collaborator this package
// depends on for randomness: it specifies the interface, not a new PRNG.
type Source interface {
	// Float32 returns a pseudo-random number in [0.0, 1.0).
	Float32() float32
	// NormFloat64 returns a normally distributed float64 with mean 0, stddev 1.
	NormFloat64() float64
	// Intn returns a pseudo-random int in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// NewSource returns a Source seeded deterministically from seed, built on
// math/rand.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
