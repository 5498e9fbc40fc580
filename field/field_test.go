package field

import "testing"

func TestGenerateBounds(t *testing.T) {
	p := Params{Count: 5000, Extent: 4, Size: 0.1}
	buf := NewGenerator(1).Generate(p)

	if buf.Count() != p.Count {
		t.Fatalf("expected %d particles, got %d", p.Count, buf.Count())
	}
	half := float32(p.Extent / 2)
	for i := 0; i < buf.Count(); i++ {
		x, y, z := buf.Position(i)
		if x < -half || x > half || y < -half || y > half {
			t.Fatalf("particle %d outside extent: (%f, %f)", i, x, y)
		}
		if z != 0 {
			t.Fatalf("particle %d: expected z == 0, got %f", i, z)
		}
		r, g, b := buf.Color(i)
		if r < 0 || r > 1 || g < 0 || g > 1 || b < 0 || b > 1 {
			t.Fatalf("particle %d: color out of range (%f,%f,%f)", i, r, g, b)
		}
	}
	if buf.PointSize != 0.1 {
		t.Errorf("expected point size 0.1, got %f", buf.PointSize)
	}
}

func TestGenerateEmpty(t *testing.T) {
	buf := NewGenerator(1).Generate(Params{Count: 0, Extent: 1, Size: 1})
	if buf.Count() != 0 {
		t.Errorf("expected no particles, got %d", buf.Count())
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
	if err := (Params{Count: 10, Extent: 0, Size: 1}).Validate(); err == nil {
		t.Error("expected error for zero extent")
	}
}
