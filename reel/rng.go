package reel

import "math/rand/v2"

// RandomSource abstracts randomness so sessions can be replayed in tests and
// simulations.
type RandomSource interface {
	Float64() float64 // uniform in [0, 1)
	IntN(n int) int   // uniform in [0, n)
}

type defaultRNG struct{}

func (defaultRNG) Float64() float64 { return rand.Float64() }
func (defaultRNG) IntN(n int) int   { return rand.IntN(n) }

// DefaultRNG returns the process-wide random source.
func DefaultRNG() RandomSource { return defaultRNG{} }

type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a reproducible source for tests and Monte Carlo runs.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }
func (s *seededRNG) IntN(n int) int   { return s.r.IntN(n) }
