package vmath

import "math/rand/v2"

// --- Scalar ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates from a to b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// --- Random ---

// RandRange returns a uniform value in [lo, hi)
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RandIntRange returns a uniform integer in [lo, hi] inclusive
func RandIntRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// Chance reports true with probability p
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
