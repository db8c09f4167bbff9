// Package randutil wraps the random draws the simulation core depends on
// behind a pluggable source, so lottery and draft outcomes are
// deterministic under a seeded source in tests.
package randutil

import (
	"math/rand"
	"time"
)

// Source provides the uniform and gaussian draws used by the core.
type Source interface {
	// UniformInt returns a uniform integer in [lo, hi] inclusive.
	UniformInt(lo, hi int) int
	// Gaussian returns a normally distributed value.
	Gaussian(mean, stdev float64) float64
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Shuffle permutes n elements via the provided swap function.
	Shuffle(n int, swap func(i, j int))
}

type source struct {
	rng *rand.Rand
}

// New returns a Source seeded with the given seed.
func New(seed int64) Source {
	return &source{rng: rand.New(rand.NewSource(seed))}
}

// NewFromClock returns a Source seeded from the wall clock.
func NewFromClock() Source {
	return New(time.Now().UnixNano())
}

func (s *source) UniformInt(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *source) Gaussian(mean, stdev float64) float64 {
	return mean + stdev*s.rng.NormFloat64()
}

func (s *source) Float64() float64 {
	return s.rng.Float64()
}

func (s *source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
