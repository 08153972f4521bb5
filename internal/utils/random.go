package utils

import "math/rand/v2"

// RandomSource is the source of every random decision the application makes
// (trend selection, score jitter, simulated delay). Implementations must be
// safe for concurrent use.
type RandomSource interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64

	// IntN returns a number in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// IntBetween returns a number in the closed range [lo, hi].
func IntBetween(r RandomSource, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// Choice returns a uniformly chosen element of items.
// It panics if items is empty.
func Choice[T any](r RandomSource, items []T) T {
	return items[r.IntN(len(items))]
}

type globalRandomSource struct{}

// NewRandomSource returns a RandomSource backed by the runtime-seeded
// top-level functions of math/rand/v2.
func NewRandomSource() RandomSource {
	return globalRandomSource{}
}

func (globalRandomSource) Float64() float64 {
	return rand.Float64()
}

func (globalRandomSource) IntN(n int) int {
	return rand.IntN(n)
}
