// Package camera provides an orbit camera for viewing point clouds.
package camera

import "math"

// Orbit circles a target point. Dragging adds angular velocity and the
// wheel adds zoom velocity; both decay each frame when damping is on.
type Orbit struct {
	// Target is the point the camera looks at
	TargetX, TargetY, TargetZ float32

	// Yaw is the angle around the Y axis, Pitch the elevation (radians)
	Yaw, Pitch float32

	// Distance from target
	Distance float32

	// Constraints
	MinDistance, MaxDistance float32
	MaxPitch                 float32

	// Damping is the fraction of pending motion applied per frame.
	// 0 or 1 disables damping (motion applies immediately).
	Damping float32

	yawVel, pitchVel, zoomVel float32
}

// New creates an orbit camera looking at the origin.
// Projection aspect is left to raylib, which takes it from the framebuffer.
func New(distance, minDistance, maxDistance float32) *Orbit {
	o := &Orbit{
		Distance:    distance,
		MinDistance: minDistance,
		MaxDistance: maxDistance,
		MaxPitch:    math.Pi/2 - 0.01,
	}
	o.Distance = clamp(o.Distance, o.MinDistance, o.MaxDistance)
	return o
}

// Rotate queues a rotation in radians.
func (o *Orbit) Rotate(dYaw, dPitch float32) {
	o.yawVel += dYaw
	o.pitchVel += dPitch
	if !o.damped() {
		o.apply(1)
	}
}

// Zoom queues a change in distance; positive moves closer.
func (o *Orbit) Zoom(amount float32) {
	o.zoomVel -= amount
	if !o.damped() {
		o.apply(1)
	}
}

// Update applies the damped share of pending motion. Call once per frame.
func (o *Orbit) Update() {
	if !o.damped() {
		return
	}
	o.apply(o.Damping)
}

// Settled reports whether no motion is pending.
func (o *Orbit) Settled() bool {
	const eps = 1e-5
	return absf(o.yawVel) < eps && absf(o.pitchVel) < eps && absf(o.zoomVel) < eps
}

func (o *Orbit) damped() bool {
	return o.Damping > 0 && o.Damping < 1
}

func (o *Orbit) apply(f float32) {
	o.Yaw = wrapAngle(o.Yaw + o.yawVel*f)
	o.Pitch = clamp(o.Pitch+o.pitchVel*f, -o.MaxPitch, o.MaxPitch)
	o.Distance = clamp(o.Distance+o.zoomVel*f, o.MinDistance, o.MaxDistance)

	o.yawVel *= 1 - f
	o.pitchVel *= 1 - f
	o.zoomVel *= 1 - f
}

// Position returns the camera position in world coordinates.
func (o *Orbit) Position() (x, y, z float32) {
	cp := float32(math.Cos(float64(o.Pitch)))
	x = o.TargetX + o.Distance*cp*float32(math.Sin(float64(o.Yaw)))
	y = o.TargetY + o.Distance*float32(math.Sin(float64(o.Pitch)))
	z = o.TargetZ + o.Distance*cp*float32(math.Cos(float64(o.Yaw)))
	return x, y, z
}

// Reset returns the camera to the given distance with no rotation.
func (o *Orbit) Reset(distance, pitch float32) {
	o.Yaw = 0
	o.Pitch = clamp(pitch, -o.MaxPitch, o.MaxPitch)
	o.Distance = clamp(distance, o.MinDistance, o.MaxDistance)
	o.yawVel, o.pitchVel, o.zoomVel = 0, 0, 0
}

// wrapAngle wraps angle to [-pi, pi].
func wrapAngle(a float32) float32 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
