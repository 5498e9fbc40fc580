package galaxy

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/galaxy/points"
)

// Stats summarises the shape of a generated cloud.
type Stats struct {
	Count      int
	MeanRadius float64
	StdRadius  float64
	P90Radius  float64
	MeanAbsY   float64
}

// Summarize computes planar radius and thickness statistics for buf.
func Summarize(buf points.Buffers) Stats {
	n := buf.Count()
	if n == 0 {
		return Stats{}
	}

	radii := make([]float64, n)
	absY := make([]float64, n)
	for i := 0; i < n; i++ {
		x, y, z := buf.Position(i)
		radii[i] = math.Hypot(float64(x), float64(z))
		absY[i] = math.Abs(float64(y))
	}

	mean, std := stat.MeanStdDev(radii, nil)
	if n < 2 {
		std = 0
	}
	sort.Float64s(radii)

	return Stats{
		Count:      n,
		MeanRadius: mean,
		StdRadius:  std,
		P90Radius:  stat.Quantile(0.9, stat.Empirical, radii, nil),
		MeanAbsY:   stat.Mean(absY, nil),
	}
}
