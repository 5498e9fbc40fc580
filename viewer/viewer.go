// Package viewer ties the scene, camera, settings panel and telemetry into
// the interactive demo loop.
package viewer

import (
	"log/slog"
	"math/rand/v2"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/galaxy/camera"
	"github.com/pthm-cable/galaxy/config"
	"github.com/pthm-cable/galaxy/field"
	"github.com/pthm-cable/galaxy/galaxy"
	"github.com/pthm-cable/galaxy/points"
	"github.com/pthm-cable/galaxy/renderer"
	"github.com/pthm-cable/galaxy/scene"
	"github.com/pthm-cable/galaxy/telemetry"
	"github.com/pthm-cable/galaxy/ui"
)

// Mode selects which demo is displayed.
type Mode int

const (
	ModeGalaxy Mode = iota
	ModeField
)

// String returns the mode name used in logs and the HUD.
func (m Mode) String() string {
	if m == ModeField {
		return telemetry.ModeField
	}
	return telemetry.ModeGalaxy
}

// ParseMode maps a flag value to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case telemetry.ModeGalaxy, "":
		return ModeGalaxy, true
	case telemetry.ModeField:
		return ModeField, true
	}
	return ModeGalaxy, false
}

// Options configures the viewer.
type Options struct {
	Seed      uint64
	Mode      Mode
	OutputDir string
	Watcher   *config.Watcher // nil disables hot reload
}

// Viewer holds the complete demo state.
type Viewer struct {
	cfg  *config.Config
	opts Options
	mode Mode

	scene     *scene.Scene
	regen     *scene.Regenerator
	galaxyGen *galaxy.Generator
	fieldGen  *field.Generator

	orbit *camera.Orbit
	cam3d rl.Camera3D

	panel  *ui.SettingsPanel
	hud    *ui.HUD
	clicks ui.DoubleClick

	output *telemetry.OutputManager
	perf   *telemetry.PerfStats

	last      scene.Result
	lastStats galaxy.Stats
	status    string
	dragging  bool
}

// New creates the viewer and builds the first point cloud.
// Must be called after the raylib window is created.
func New(cfg *config.Config, opts Options) *Viewer {
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	screenW := int32(rl.GetScreenWidth())

	v := &Viewer{
		cfg:       cfg,
		opts:      opts,
		mode:      opts.Mode,
		scene:     scene.New(),
		galaxyGen: galaxy.NewGenerator(seed),
		fieldGen:  field.NewGenerator(seed),
		panel:     ui.NewSettingsPanel(screenW, int32(cfg.Panel.Width), cfg.Derived.Galaxy, cfg.Derived.Field),
		hud:       ui.NewHUD(),
		clicks:    ui.DoubleClick{Window: cfg.Panel.DoubleClickSec},
		perf:      telemetry.NewPerfStats(120),
	}

	cc := cfg.Camera
	v.orbit = camera.New(float32(cc.Distance), float32(cc.MinDistance), float32(cc.MaxDistance))
	v.orbit.Reset(float32(cc.Distance), float32(cc.Pitch))
	v.orbit.Damping = float32(cc.Damping)
	v.cam3d = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       float32(cc.Fovy),
		Projection: rl.CameraPerspective,
	}
	v.syncCamera()

	v.regen = scene.NewRegenerator(v.scene, func(buf points.Buffers) scene.Drawable {
		return renderer.NewPointCloud(buf, &v.cam3d)
	})

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("output disabled", "dir", opts.OutputDir, "error", err)
	} else if output != nil {
		if err := output.WriteConfig(cfg); err != nil {
			slog.Warn("failed to write config snapshot", "error", err)
		}
		slog.Info("writing output", "dir", output.Dir(), "run_id", output.RunID())
	}
	v.output = output

	v.regenerate()
	return v
}

// Mode returns the displayed demo.
func (v *Viewer) Mode() Mode {
	return v.mode
}

// Update processes input and pending config reloads. Call once per frame.
func (v *Viewer) Update() {
	start := time.Now()

	v.handleResize()
	v.handleInput()
	v.pollConfig()

	v.orbit.Update()
	v.syncCamera()

	v.perf.Record("update", time.Since(start))
}

// Draw renders one frame, then applies whatever the panel asked for.
// Regeneration happens after EndDrawing so a frame never shows a
// half-swapped scene.
func (v *Viewer) Draw() {
	start := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.BeginMode3D(v.cam3d)
	v.scene.Draw()
	rl.EndMode3D()

	v.drawHUD()
	action := v.panel.Draw(v.mode == ModeGalaxy)

	rl.EndDrawing()
	v.perf.Record("draw", time.Since(start))

	v.handleAction(action)
}

// Unload releases the scene and closes outputs.
func (v *Viewer) Unload() {
	v.scene.Close()
	if err := v.output.Close(); err != nil {
		slog.Warn("closing output", "error", err)
	}
}

func (v *Viewer) syncCamera() {
	x, y, z := v.orbit.Position()
	v.cam3d.Position = rl.Vector3{X: x, Y: y, Z: z}
	v.cam3d.Target = rl.Vector3{X: v.orbit.TargetX, Y: v.orbit.TargetY, Z: v.orbit.TargetZ}
}

func (v *Viewer) drawHUD() {
	names := v.perf.SortedNames()
	v.hud.Draw(ui.HUDData{
		Title:      v.cfg.Screen.Title,
		Mode:       v.mode.String(),
		Particles:  v.last.Buffers.Count(),
		Generation: v.last.Generation,
		LastRegen:  v.last.Elapsed,
		MeanRadius: v.lastStats.MeanRadius,
		P90Radius:  v.lastStats.P90Radius,
		Thickness:  v.lastStats.MeanAbsY,
		FPS:        rl.GetFPS(),
		Status:     v.status,
		PerfTimes:  v.perf.Averages(),
		PerfOrder:  names,
	})
	v.hud.DrawControls(int32(rl.GetScreenHeight()),
		"Drag: orbit | Wheel: zoom | Double-click: fullscreen | Tab: switch demo | H: panel | C: reset camera")
}
