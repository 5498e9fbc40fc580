package scene

import (
	"time"

	"github.com/pthm-cable/galaxy/points"
)

// Builder turns generated buffers into a drawable.
type Builder func(points.Buffers) Drawable

// Result describes one completed regeneration.
type Result struct {
	Generation int // scene generation of the displayed cloud
	Buffers    points.Buffers
	Elapsed    time.Duration
}

// Regenerator rebuilds the displayed cloud whenever a setting is committed.
// It runs synchronously on the caller's goroutine; each call fully
// supersedes the previous one.
type Regenerator struct {
	scene *Scene
	build Builder
	count int
}

// NewRegenerator creates a regenerator that swaps clouds into s.
func NewRegenerator(s *Scene, build Builder) *Regenerator {
	return &Regenerator{scene: s, build: build}
}

// Regenerate runs generate, builds a drawable and swaps it in.
func (r *Regenerator) Regenerate(generate func() points.Buffers) Result {
	start := time.Now()

	buf := generate()
	d := r.build(buf)
	gen := r.scene.Swap(d)

	r.count++
	return Result{
		Generation: gen,
		Buffers:    buf,
		Elapsed:    time.Since(start),
	}
}

// Count returns the number of regenerations performed.
func (r *Regenerator) Count() int {
	return r.count
}
