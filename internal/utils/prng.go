// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"github.com/golang/geo/r3"
)

// PRNGService wraps a seeded generator so the whole scene can be reproduced
// from a single seed.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a service with the given seed. A zero seed uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed actually used.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random number in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Centered returns a random number in [-size/2, size/2).
func (s *PRNGService) Centered(size float64) float64 {
	return (s.rng.Float64() - 0.5) * size
}

// Jitter returns a vector with each component drawn from Centered(size).
func (s *PRNGService) Jitter(size float64) r3.Vector {
	return r3.Vector{X: s.Centered(size), Y: s.Centered(size), Z: s.Centered(size)}
}

// Chance returns true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}
