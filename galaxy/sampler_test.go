package galaxy

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestSampleZeroSpreadReturnsMean(t *testing.T) {
	s := NewSampler(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		if v := s.Sample(3.5, 0); v != 3.5 {
			t.Fatalf("expected 3.5 with zero spread, got %f", v)
		}
	}
}

func TestSampleNonFiniteSpread(t *testing.T) {
	s := NewSampler(rand.NewPCG(1, 2))
	for _, spread := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if v := s.Sample(1, spread); v != 1 {
			t.Errorf("spread %v: expected mean, got %f", spread, v)
		}
	}
}

func TestSampleNegativeSpreadIsFinite(t *testing.T) {
	s := NewSampler(rand.NewPCG(7, 7))
	for i := 0; i < 1000; i++ {
		v := s.Sample(0, -0.5)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("expected finite sample, got %f", v)
		}
	}
}

func TestSampleDistribution(t *testing.T) {
	s := NewSampler(rand.NewPCG(42, 99))
	const n = 20000
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = s.Sample(2, 0.5)
	}

	mean, std := stat.MeanStdDev(samples, nil)
	if math.Abs(mean-2) > 0.02 {
		t.Errorf("expected mean near 2, got %f", mean)
	}
	if math.Abs(std-0.5) > 0.02 {
		t.Errorf("expected std near 0.5, got %f", std)
	}

	// Negative spread uses the absolute value
	for i := range samples {
		samples[i] = s.Sample(0, -0.5)
	}
	_, std = stat.MeanStdDev(samples, nil)
	if math.Abs(std-0.5) > 0.02 {
		t.Errorf("expected std near 0.5 for negative spread, got %f", std)
	}
}

func TestSampleHugeSpreadIsFinite(t *testing.T) {
	s := NewSampler(rand.NewPCG(3, 4))
	nonFinite := 0
	for i := 0; i < 1000; i++ {
		v := s.Sample(0, math.MaxFloat64/2)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			nonFinite++
		}
	}
	if nonFinite != 0 {
		t.Errorf("expected finite samples, got %d non-finite out of 1000", nonFinite)
	}
}

func TestSampleSeedDeterministic(t *testing.T) {
	a := NewSampler(rand.NewPCG(5, 6))
	b := NewSampler(rand.NewPCG(5, 6))
	for i := 0; i < 100; i++ {
		if va, vb := a.Sample(1, 0.3), b.Sample(1, 0.3); va != vb {
			t.Fatalf("draw %d: expected identical samples, got %f and %f", i, va, vb)
		}
	}
}

func TestSampleNilSource(t *testing.T) {
	s := NewSampler(nil)
	if v := s.Sample(0, 1); math.IsNaN(v) || math.IsInf(v, 0) {
		t.Errorf("expected finite sample, got %f", v)
	}
}

func TestSampleDoesNotAllocate(t *testing.T) {
	s := NewSampler(rand.NewPCG(8, 9))
	allocs := testing.AllocsPerRun(1000, func() {
		s.Sample(0, 0.5)
	})
	if allocs != 0 {
		t.Errorf("expected no allocations per sample, got %f", allocs)
	}
}
