// Package scene owns the drawables currently on screen. Clouds live as
// entities in an ark ECS world so the render loop can query them like any
// other component.
package scene

import (
	"github.com/mlange-42/ark/ecs"
)

// Drawable is a renderable resource that must be released when replaced.
type Drawable interface {
	Draw()
	Release()
}

// Cloud is the component attached to a displayed point cloud entity.
type Cloud struct {
	Drawable   Drawable
	Generation int
}

// Scene holds at most one displayed cloud when driven through Swap.
type Scene struct {
	world  *ecs.World
	clouds *ecs.Map1[Cloud]
	filter *ecs.Filter1[Cloud]

	current    ecs.Entity
	hasCurrent bool
	generation int
}

// New creates an empty scene.
func New() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:  world,
		clouds: ecs.NewMap1[Cloud](world),
		filter: ecs.NewFilter1[Cloud](world),
	}
}

// Attach adds d to the scene and makes it the displayed cloud.
// It does not release any previously displayed cloud; use Swap for that.
func (s *Scene) Attach(d Drawable) ecs.Entity {
	s.generation++
	e := s.clouds.NewEntity(&Cloud{Drawable: d, Generation: s.generation})
	s.current = e
	s.hasCurrent = true
	return e
}

// Detach removes the entity from the scene without releasing its drawable.
func (s *Scene) Detach(e ecs.Entity) {
	if !s.world.Alive(e) {
		return
	}
	s.world.RemoveEntity(e)
	if s.hasCurrent && s.current == e {
		s.hasCurrent = false
	}
}

// Swap releases and detaches the displayed cloud, then attaches d and
// returns its generation. A nil d leaves the scene empty and returns 0.
func (s *Scene) Swap(d Drawable) int {
	if s.hasCurrent && s.world.Alive(s.current) {
		old := s.current
		if c := s.clouds.Get(old); c != nil && c.Drawable != nil {
			c.Drawable.Release()
		}
		s.Detach(old)
	}
	s.hasCurrent = false
	if d == nil {
		return 0
	}
	s.Attach(d)
	return s.generation
}

// Displayed returns the current drawable and its generation.
func (s *Scene) Displayed() (Drawable, int, bool) {
	if !s.hasCurrent || !s.world.Alive(s.current) {
		return nil, 0, false
	}
	c := s.clouds.Get(s.current)
	return c.Drawable, c.Generation, true
}

// Live returns the number of clouds in the scene.
func (s *Scene) Live() int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Draw draws every cloud in the scene.
func (s *Scene) Draw() {
	query := s.filter.Query()
	for query.Next() {
		c := query.Get()
		if c.Drawable != nil {
			c.Drawable.Draw()
		}
	}
}

// Close releases and removes every cloud.
func (s *Scene) Close() {
	var toRemove []ecs.Entity

	query := s.filter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}

	for _, e := range toRemove {
		if c := s.clouds.Get(e); c.Drawable != nil {
			c.Drawable.Release()
		}
		s.world.RemoveEntity(e)
	}
	s.hasCurrent = false
}
