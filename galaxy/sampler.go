package galaxy

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws normally distributed offsets.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler over src. A nil src gets a randomly seeded one.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Sampler{rng: rand.New(src)}
}

// Sample returns a value from N(mean, |spread|).
// A negative spread is treated as its absolute value. A zero or
// non-finite spread returns mean unchanged. Draws that overflow are
// clamped to ±math.MaxFloat64, so a finite mean always yields a finite value.
func (s *Sampler) Sample(mean, spread float64) float64 {
	sigma := math.Abs(spread)
	if sigma == 0 || math.IsInf(sigma, 0) || math.IsNaN(sigma) {
		return mean
	}

	// Inverse CDF keeps the draw on our own source with no per-call allocation.
	u := s.rng.Float64()
	for u == 0 {
		u = s.rng.Float64()
	}
	v := distuv.Normal{Mu: mean, Sigma: sigma}.Quantile(u)

	switch {
	case math.IsNaN(v):
		return mean
	case math.IsInf(v, 0):
		return math.Copysign(math.MaxFloat64, v)
	}
	return v
}
