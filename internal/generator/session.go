package generator

import (
	"math/rand"
)

// Session owns all mutable state for one generation run: the seeded random
// stream and the set of names already issued. Two sessions never share
// state, so independent runs inside one process stay reproducible.
//
// The stream is a single linear sequence. Every field computation must draw
// in the same relative order across runs; reordering draws (or running
// builders concurrently) breaks the determinism contract.
type Session struct {
	rng       *rand.Rand
	usedNames map[string]struct{}
}

// NewSession creates a session seeded exactly once.
func NewSession(seed int64) *Session {
	return &Session{
		rng:       rand.New(rand.NewSource(seed)), //nolint:gosec // Content generation randomness, not security critical
		usedNames: make(map[string]struct{}),
	}
}

// Float returns the next float64 in [0.0, 1.0).
func (s *Session) Float() float64 {
	return s.rng.Float64()
}

// Int returns a uniform integer in [min, max] inclusive.
func (s *Session) Int(min, max int) int {
	if min >= max {
		return min
	}
	return s.rng.Intn(max-min+1) + min
}

// FloatRange returns a uniform float64 in [min, max).
func (s *Session) FloatRange(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// choice returns a uniformly random element of items. Items must be non-empty.
func choice[T any](s *Session, items []T) T {
	return items[s.rng.Intn(len(items))]
}
