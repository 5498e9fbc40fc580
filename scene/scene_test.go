package scene

import (
	"testing"

	"github.com/pthm-cable/galaxy/galaxy"
	"github.com/pthm-cable/galaxy/points"
)

type fakeDrawable struct {
	id       int
	draws    int
	released int
}

func (f *fakeDrawable) Draw()    { f.draws++ }
func (f *fakeDrawable) Release() { f.released++ }

func TestSwapReleasesPrevious(t *testing.T) {
	s := New()
	a := &fakeDrawable{id: 1}
	b := &fakeDrawable{id: 2}

	s.Swap(a)
	if s.Live() != 1 {
		t.Fatalf("expected 1 live cloud, got %d", s.Live())
	}

	s.Swap(b)
	if a.released != 1 {
		t.Errorf("expected first cloud released once, got %d", a.released)
	}
	if b.released != 0 {
		t.Errorf("expected new cloud not released, got %d", b.released)
	}
	if s.Live() != 1 {
		t.Errorf("expected 1 live cloud after swap, got %d", s.Live())
	}

	d, gen, ok := s.Displayed()
	if !ok || d != b {
		t.Fatal("expected second cloud to be displayed")
	}
	if gen != 2 {
		t.Errorf("expected generation 2, got %d", gen)
	}
}

func TestSwapNilClears(t *testing.T) {
	s := New()
	a := &fakeDrawable{}
	if gen := s.Swap(a); gen != 1 {
		t.Errorf("expected generation 1, got %d", gen)
	}
	if gen := s.Swap(nil); gen != 0 {
		t.Errorf("expected generation 0 for an empty swap, got %d", gen)
	}

	if a.released != 1 {
		t.Errorf("expected cloud released, got %d", a.released)
	}
	if s.Live() != 0 {
		t.Errorf("expected empty scene, got %d", s.Live())
	}
	if _, _, ok := s.Displayed(); ok {
		t.Error("expected nothing displayed")
	}
}

func TestAttachDetach(t *testing.T) {
	s := New()
	a := &fakeDrawable{}
	e := s.Attach(a)

	s.Draw()
	if a.draws != 1 {
		t.Errorf("expected 1 draw, got %d", a.draws)
	}

	s.Detach(e)
	if s.Live() != 0 {
		t.Errorf("expected empty scene after detach, got %d", s.Live())
	}
	if a.released != 0 {
		t.Error("expected detach to leave the drawable unreleased")
	}

	// Detaching twice is harmless
	s.Detach(e)
}

func TestClose(t *testing.T) {
	s := New()
	a := &fakeDrawable{}
	b := &fakeDrawable{}
	s.Attach(a)
	s.Attach(b)

	s.Close()
	if a.released != 1 || b.released != 1 {
		t.Errorf("expected both released once, got %d and %d", a.released, b.released)
	}
	if s.Live() != 0 {
		t.Errorf("expected empty scene, got %d", s.Live())
	}
}

func TestRegeneratorNoLeak(t *testing.T) {
	s := New()
	var built []*fakeDrawable
	r := NewRegenerator(s, func(buf points.Buffers) Drawable {
		d := &fakeDrawable{id: len(built)}
		built = append(built, d)
		return d
	})

	gen := galaxy.NewGenerator(1)
	p := galaxy.DefaultParams()
	p.Count = 100

	const n = 25
	var last Result
	for i := 0; i < n; i++ {
		last = r.Regenerate(func() points.Buffers { return gen.Generate(p) })
	}

	if s.Live() != 1 {
		t.Fatalf("expected exactly 1 live cloud, got %d", s.Live())
	}
	for i, d := range built[:n-1] {
		if d.released != 1 {
			t.Errorf("cloud %d: expected released once, got %d", i, d.released)
		}
	}
	if built[n-1].released != 0 {
		t.Error("expected latest cloud to stay live")
	}
	if last.Generation != n || r.Count() != n {
		t.Errorf("expected generation %d, got %d", n, last.Generation)
	}
	if last.Buffers.Count() != p.Count {
		t.Errorf("expected %d particles, got %d", p.Count, last.Buffers.Count())
	}
}

func TestRegenerateReportsSceneGeneration(t *testing.T) {
	s := New()
	r := NewRegenerator(s, func(buf points.Buffers) Drawable {
		return &fakeDrawable{}
	})

	// A cloud attached directly still advances the scene's counter
	s.Attach(&fakeDrawable{id: 99})

	res := r.Regenerate(func() points.Buffers { return points.New(3, 0.1) })
	_, gen, ok := s.Displayed()
	if !ok {
		t.Fatal("expected a displayed cloud")
	}
	if res.Generation != gen {
		t.Errorf("expected result generation %d to match displayed generation %d", res.Generation, gen)
	}
	if res.Generation != 2 {
		t.Errorf("expected generation 2, got %d", res.Generation)
	}
	if r.Count() != 1 {
		t.Errorf("expected 1 regeneration, got %d", r.Count())
	}
}
