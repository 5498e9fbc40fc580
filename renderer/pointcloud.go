// Package renderer draws point clouds with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/galaxy/points"
)

// spriteSize is the side length of the particle alpha texture in pixels.
const spriteSize = 32

// PointCloud draws every particle as a camera-facing billboard with a soft
// radial sprite, tinted by its vertex colour and blended additively.
// It owns its sprite texture; Release frees it.
type PointCloud struct {
	positions []rl.Vector3
	colors    []rl.Color
	size      float32

	camera   *rl.Camera3D
	sprite   rl.Texture2D
	released bool
}

// NewPointCloud uploads a sprite and converts buf for drawing.
// camera is read on every Draw, so it may keep moving.
// Must be called after the window is created.
func NewPointCloud(buf points.Buffers, camera *rl.Camera3D) *PointCloud {
	positions, colors := Vertices(buf)
	return &PointCloud{
		positions: positions,
		colors:    colors,
		size:      buf.PointSize,
		camera:    camera,
		sprite:    loadSprite(),
	}
}

// Vertices converts flat buffers into raylib vectors and 8-bit colours.
func Vertices(buf points.Buffers) ([]rl.Vector3, []rl.Color) {
	n := buf.Count()
	positions := make([]rl.Vector3, n)
	colors := make([]rl.Color, n)
	for i := 0; i < n; i++ {
		x, y, z := buf.Position(i)
		r, g, b := buf.Color(i)
		positions[i] = rl.Vector3{X: x, Y: y, Z: z}
		colors[i] = rl.Color{R: toByte(r), G: toByte(g), B: toByte(b), A: 255}
	}
	return positions, colors
}

// Draw renders the cloud. Call between BeginMode3D and EndMode3D.
func (p *PointCloud) Draw() {
	if p.released {
		return
	}

	// Additive sprites must not occlude each other
	rl.DisableDepthMask()
	rl.BeginBlendMode(rl.BlendAdditive)
	for i := range p.positions {
		rl.DrawBillboard(*p.camera, p.sprite, p.positions[i], p.size, p.colors[i])
	}
	rl.EndBlendMode()
	rl.EnableDepthMask()
}

// Release frees the sprite texture and drops the vertex data.
// Releasing twice is a no-op.
func (p *PointCloud) Release() {
	if p.released {
		return
	}
	rl.UnloadTexture(p.sprite)
	p.positions = nil
	p.colors = nil
	p.released = true
}

// Len returns the number of particles drawn.
func (p *PointCloud) Len() int {
	return len(p.positions)
}

// loadSprite builds the radial falloff texture used as the particle alpha map.
func loadSprite() rl.Texture2D {
	img := rl.GenImageGradientRadial(spriteSize, spriteSize, 0, rl.White, rl.Blank)
	defer rl.UnloadImage(img)
	return rl.LoadTextureFromImage(img)
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
