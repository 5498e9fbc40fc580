package points

import "testing"

func TestNewLengths(t *testing.T) {
	b := New(5, 0.1)
	if b.Count() != 5 {
		t.Errorf("expected 5 particles, got %d", b.Count())
	}
	if len(b.Positions) != 15 || len(b.Colors) != 15 {
		t.Errorf("expected 15 floats per buffer, got %d/%d", len(b.Positions), len(b.Colors))
	}
	if !b.Valid() {
		t.Error("expected fresh buffers to be valid")
	}
}

func TestNewNegativeCount(t *testing.T) {
	b := New(-3, 1)
	if b.Count() != 0 {
		t.Errorf("expected empty buffers, got %d particles", b.Count())
	}
}

func TestSetAndGet(t *testing.T) {
	b := New(2, 1)
	b.Set(1, 1, 2, 3, 0.1, 0.2, 0.3)

	x, y, z := b.Position(1)
	if x != 1 || y != 2 || z != 3 {
		t.Errorf("expected (1,2,3), got (%f,%f,%f)", x, y, z)
	}
	r, g, bl := b.Color(1)
	if r != 0.1 || g != 0.2 || bl != 0.3 {
		t.Errorf("expected (0.1,0.2,0.3), got (%f,%f,%f)", r, g, bl)
	}

	// Particle 0 untouched
	x, y, z = b.Position(0)
	if x != 0 || y != 0 || z != 0 {
		t.Errorf("expected particle 0 at origin, got (%f,%f,%f)", x, y, z)
	}
}
