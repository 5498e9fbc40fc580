package galaxy

import (
	"testing"

	"github.com/pthm-cable/galaxy/points"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(points.Buffers{})
	if s.Count != 0 || s.MeanRadius != 0 {
		t.Errorf("expected zero stats, got %+v", s)
	}
}

func TestSummarizeKnownCloud(t *testing.T) {
	buf := points.New(4, 1)
	buf.Set(0, 1, 0, 0, 0, 0, 0)
	buf.Set(1, 0, 1, 2, 0, 0, 0)
	buf.Set(2, -3, 0, 0, 0, 0, 0)
	buf.Set(3, 0, -1, -4, 0, 0, 0)

	s := Summarize(buf)
	if s.Count != 4 {
		t.Errorf("expected count 4, got %d", s.Count)
	}
	if s.MeanRadius != 2.5 {
		t.Errorf("expected mean radius 2.5, got %f", s.MeanRadius)
	}
	if s.MeanAbsY != 0.5 {
		t.Errorf("expected mean |y| 0.5, got %f", s.MeanAbsY)
	}
	if s.P90Radius != 4 {
		t.Errorf("expected p90 radius 4, got %f", s.P90Radius)
	}
}

func TestSummarizeGeneratedWithinRadius(t *testing.T) {
	p := testParams()
	p.Spread = 0
	s := Summarize(NewGenerator(4).Generate(p))
	if s.P90Radius > p.Radius {
		t.Errorf("expected p90 radius <= %f, got %f", p.Radius, s.P90Radius)
	}
	if s.MeanAbsY != 0 {
		t.Errorf("expected flat disc with zero spread, got mean |y| %f", s.MeanAbsY)
	}
}
