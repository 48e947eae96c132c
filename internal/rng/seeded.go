package rng

import (
	"math/rand"
)

// Seeded is a reproducible generator: two generators built with the same
// seed return the same sequence. It is not safe for concurrent use.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a generator seeded with seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rng: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}
