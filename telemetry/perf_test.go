package telemetry

import (
	"testing"
	"time"
)

func TestPerfStatsAverage(t *testing.T) {
	p := NewPerfStats(10)
	p.Record("draw", 2*time.Millisecond)
	p.Record("draw", 4*time.Millisecond)

	if got := p.Avg("draw"); got != 3*time.Millisecond {
		t.Errorf("expected 3ms average, got %s", got)
	}
	if got := p.Avg("missing"); got != 0 {
		t.Errorf("expected zero for unknown phase, got %s", got)
	}
}

func TestPerfStatsRollingWindow(t *testing.T) {
	p := NewPerfStats(3)
	for i := 1; i <= 10; i++ {
		p.Record("regenerate", time.Duration(i)*time.Millisecond)
	}
	// Only 8, 9, 10 remain
	if got := p.Avg("regenerate"); got != 9*time.Millisecond {
		t.Errorf("expected 9ms average over window, got %s", got)
	}
}

func TestPerfStatsSortedNames(t *testing.T) {
	p := NewPerfStats(5)
	p.Record("draw", time.Millisecond)
	p.Record("regenerate", 20*time.Millisecond)
	p.Record("update", 5*time.Millisecond)

	names := p.SortedNames()
	want := []string{"regenerate", "update", "draw"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
	if len(p.Averages()) != 3 {
		t.Errorf("expected 3 averages, got %d", len(p.Averages()))
	}
}
