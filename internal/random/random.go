// Package random provides the seeded uniform helpers the game draws from.
package random

import "math/rand"

// Provider is the subset of random operations the game needs.
type Provider interface {
	// Int returns an integer in [0, n). It returns 0 when n <= 0.
	Int(n int) int
	// Range returns a number in [min, max).
	Range(min, max float64) float64
	// Float returns a number in [0, 1).
	Float() float64
}

// Source is a Provider backed by math/rand. It is not safe for concurrent use;
// each game session owns its own Source.
type Source struct {
	rng *rand.Rand
}

// New creates a Source seeded with seed.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Int returns an integer in [0, n).
func (s *Source) Int(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Range returns a number in [min, max).
func (s *Source) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Float returns a number in [0, 1).
func (s *Source) Float() float64 {
	return s.rng.Float64()
}

// Pick returns a uniformly chosen element of list, or the zero value when
// list is empty.
func Pick[T any](p Provider, list []T) T {
	var zero T
	if len(list) == 0 {
		return zero
	}
	return list[p.Int(len(list))]
}
