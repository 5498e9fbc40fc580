// Package galaxy generates spiral galaxy point clouds.
package galaxy

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Params is an immutable snapshot of the galaxy settings.
// It is passed by value; the UI owns the mutable working copy.
type Params struct {
	Count      int
	Radius     float64
	Size       float64
	Branches   int
	Spin       float64
	Spread     float64
	InnerColor colorful.Color
	OuterColor colorful.Color
}

// DefaultParams returns the settings the demo starts with.
func DefaultParams() Params {
	inner, _ := colorful.Hex("#ff6030")
	outer, _ := colorful.Hex("#1b3984")
	return Params{
		Count:      20000,
		Radius:     5,
		Size:       0.05,
		Branches:   3,
		Spin:       1,
		Spread:     0.2,
		InnerColor: inner,
		OuterColor: outer,
	}
}

// Validate reports every constraint the parameters violate.
func (p Params) Validate() error {
	var errs []error
	if p.Count < 0 {
		errs = append(errs, fmt.Errorf("count must be non-negative, got %d", p.Count))
	}
	if p.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius must be positive, got %g", p.Radius))
	}
	if p.Size <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got %g", p.Size))
	}
	if p.Branches < 1 {
		errs = append(errs, fmt.Errorf("branches must be at least 1, got %d", p.Branches))
	}
	if p.Spread < 0 {
		errs = append(errs, fmt.Errorf("spread must be non-negative, got %g", p.Spread))
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"radius", p.Radius},
		{"size", p.Size},
		{"spin", p.Spin},
		{"spread", p.Spread},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %g", f.name, f.v))
		}
	}
	if !p.InnerColor.IsValid() {
		errs = append(errs, errors.New("inner color out of range"))
	}
	if !p.OuterColor.IsValid() {
		errs = append(errs, errors.New("outer color out of range"))
	}
	return errors.Join(errs...)
}

// ColorAt interpolates between the inner and outer colour in RGB space.
// t is clamped to [0, 1].
func (p Params) ColorAt(t float64) colorful.Color {
	t = math.Max(0, math.Min(1, t))
	return p.InnerColor.BlendRgb(p.OuterColor, t).Clamped()
}
