package weather

import (
	"math/rand/v2"
	"sync"
)

// Sampler is the source of randomness for forecast generation
type Sampler interface {
	// Normal draws from a normal distribution
	Normal(mean, stddev float64) float64
	// Uniform draws from [lo, hi)
	Uniform(lo, hi float64) float64
	// Float64 draws from [0, 1)
	Float64() float64
	// IntRange draws an integer from [lo, hi); hi must be greater than lo
	IntRange(lo, hi int) int
}

// RandSampler is a Sampler backed by one seeded PCG generator.
// It is safe for concurrent use.
type RandSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandSampler creates a sampler seeded with seed. A zero seed picks one
// from the runtime's entropy source.
func NewRandSampler(seed uint64) *RandSampler {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &RandSampler{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *RandSampler) Normal(mean, stddev float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mean + stddev*s.rng.NormFloat64()
}

func (s *RandSampler) Uniform(lo, hi float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + (hi-lo)*s.rng.Float64()
}

func (s *RandSampler) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *RandSampler) IntRange(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.IntN(hi-lo)
}
