package provider

import (
	"fmt"

	"tarot/internal/rng"
)

// WeightError is an error when weights cannot be used for a random choice
type WeightError []int

func (w WeightError) Error() string {
	return fmt.Sprintf("invalid weights: %v", []int(w))
}

// weightedIndex returns an index with a probability proportional to its weight
func weightedIndex(gen rng.Generator, weights []int) (int, error) {
	total := 0
	for _, weight := range weights {
		if weight < 0 {
			return 0, WeightError(weights)
		}
		total += weight
	}

	if total <= 0 {
		return 0, WeightError(weights)
	}

	n := gen.Intn(total)
	for i, weight := range weights {
		if n < weight {
			return i, nil
		}
		n -= weight
	}

	return len(weights) - 1, nil
}
