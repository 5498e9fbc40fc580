package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleResize keeps the panel anchored to the right edge. raylib rebuilds
// the projection from the new framebuffer size on its own.
func (v *Viewer) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	v.panel.Resize(int32(rl.GetScreenWidth()))
}

// handleInput processes orbit controls and keyboard shortcuts.
func (v *Viewer) handleInput() {
	mouse := rl.GetMousePosition()
	overPanel := v.panel.Contains(mouse.X, mouse.Y)
	cc := v.cfg.Camera

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !overPanel {
		v.dragging = true
		if v.clicks.Click(rl.GetTime()) {
			rl.ToggleFullscreen()
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		v.dragging = false
	}

	if v.dragging {
		delta := rl.GetMouseDelta()
		speed := float32(cc.RotateSpeed)
		v.orbit.Rotate(-delta.X*speed, delta.Y*speed)
	}

	if !overPanel {
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			v.orbit.Zoom(wheel * float32(cc.ZoomSpeed))
		}
	}

	// Keyboard shortcuts
	if rl.IsKeyPressed(rl.KeyTab) {
		v.toggleMode()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		v.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		v.orbit.Reset(float32(cc.Distance), float32(cc.Pitch))
	}
}
