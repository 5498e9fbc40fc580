package galaxy

import (
	"math"
	"math/rand/v2"

	"github.com/pthm-cable/galaxy/points"
)

// edgeMargin keeps the jitter spread positive at the outer radius.
const edgeMargin = 0.2

// Generator builds galaxy point clouds from a private random source.
// It never touches display state.
type Generator struct {
	rng     *rand.Rand
	sampler *Sampler
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Generator{
		rng:     rand.New(src),
		sampler: NewSampler(src),
	}
}

// Generate builds a point cloud with a randomly seeded generator.
func Generate(p Params) points.Buffers {
	return NewGenerator(rand.Uint64()).Generate(p)
}

// BranchAngle returns the arm angle particle i is assigned to.
// Branches below 1 are treated as a single arm.
func BranchAngle(i, branches int) float64 {
	if branches < 1 {
		branches = 1
	}
	return float64(i%branches) / float64(branches) * 2 * math.Pi
}

// Generate computes positions and colours for p.Count particles arranged
// along p.Branches spiral arms.
func (g *Generator) Generate(p Params) points.Buffers {
	if p.Count <= 0 {
		return points.New(0, float32(p.Size))
	}

	buf := points.New(p.Count, float32(p.Size))
	for i := 0; i < p.Count; i++ {
		radius := g.rng.Float64() * p.Radius

		angle := BranchAngle(i, p.Branches) + p.Spin*radius

		spread := p.Spread * (p.Radius + edgeMargin - radius)
		jx := g.sampler.Sample(0, spread)
		jy := g.sampler.Sample(0, spread)
		jz := g.sampler.Sample(0, spread)

		x := math.Cos(angle)*radius + jx
		z := math.Sin(angle)*radius + jz

		t := 0.0
		if p.Radius > 0 {
			t = radius / p.Radius
		}
		c := p.ColorAt(t)

		buf.Set(i,
			float32(x), float32(jy), float32(z),
			float32(c.R), float32(c.G), float32(c.B),
		)
	}
	return buf
}
