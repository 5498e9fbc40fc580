// Package field generates the static particle field demo: a flat square of
// randomly coloured points.
package field

import (
	"fmt"
	"math/rand/v2"

	"github.com/pthm-cable/galaxy/points"
)

// Params controls the particle field.
type Params struct {
	Count  int
	Extent float64 // side length of the square, centred on the origin
	Size   float64
}

// DefaultParams returns the field settings the demo starts with.
func DefaultParams() Params {
	return Params{
		Count:  50000,
		Extent: 10,
		Size:   0.1,
	}
}

// Validate checks the parameters are usable.
func (p Params) Validate() error {
	if p.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", p.Count)
	}
	if p.Extent <= 0 {
		return fmt.Errorf("extent must be positive, got %g", p.Extent)
	}
	if p.Size <= 0 {
		return fmt.Errorf("size must be positive, got %g", p.Size)
	}
	return nil
}

// Generator builds particle fields from a private random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

// Generate places p.Count particles uniformly on the z = 0 plane with
// independent random colours.
func (g *Generator) Generate(p Params) points.Buffers {
	buf := points.New(p.Count, float32(p.Size))
	for i := 0; i < buf.Count(); i++ {
		x := (g.rng.Float64() - 0.5) * p.Extent
		y := (g.rng.Float64() - 0.5) * p.Extent
		buf.Set(i,
			float32(x), float32(y), 0,
			g.rng.Float32(), g.rng.Float32(), g.rng.Float32(),
		)
	}
	return buf
}
