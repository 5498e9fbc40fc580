package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/galaxy/field"
	"github.com/pthm-cable/galaxy/galaxy"
)

// Action is what the settings panel asks the viewer to do this frame.
type Action int

const (
	ActionNone Action = iota
	ActionCommit
	ActionReset
	ActionExport
	ActionLoadPreset
	ActionSavePreset
	ActionToggleMode
)

// Slider limits, matching what the panel lets a user reach.
const (
	galaxyCountMin    = 100
	galaxyCountMax    = 100000
	galaxyRadiusMin   = 0.01
	galaxyRadiusMax   = 20
	galaxySizeMin     = 0.001
	galaxySizeMax     = 0.2
	galaxyBranchesMin = 1
	galaxyBranchesMax = 20
	galaxySpinMin     = -5
	galaxySpinMax     = 5
	galaxySpreadMin   = 0
	galaxySpreadMax   = 2

	fieldCountMin  = 100
	fieldCountMax  = 100000
	fieldExtentMin = 1
	fieldExtentMax = 30
	fieldSizeMin   = 0.01
	fieldSizeMax   = 0.5
)

// SettingsPanel is the right-hand parameter panel. It owns the mutable
// working copies; the viewer reads value snapshots when a commit fires.
type SettingsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool

	galaxy galaxy.Params
	field  field.Params
	commit CommitTracker

	// layout state for the current pass
	cy         float32
	galaxyMode bool
}

// NewSettingsPanel creates a panel anchored to the right edge of the screen.
func NewSettingsPanel(screenW, width int32, g galaxy.Params, f field.Params) *SettingsPanel {
	return &SettingsPanel{
		renderer:   NewRenderer(),
		x:          screenW - width - 10,
		y:          10,
		width:      width,
		visible:    true,
		galaxy:     g,
		field:      f,
		galaxyMode: true,
	}
}

// Galaxy returns a snapshot of the galaxy working copy.
func (s *SettingsPanel) Galaxy() galaxy.Params {
	return s.galaxy
}

// Field returns a snapshot of the field working copy.
func (s *SettingsPanel) Field() field.Params {
	return s.field
}

// SetGalaxy replaces the galaxy working copy.
func (s *SettingsPanel) SetGalaxy(p galaxy.Params) {
	s.galaxy = p
	s.commit.Reset()
}

// SetField replaces the field working copy.
func (s *SettingsPanel) SetField(p field.Params) {
	s.field = p
	s.commit.Reset()
}

// Resize re-anchors the panel after a window resize.
func (s *SettingsPanel) Resize(screenW int32) {
	s.x = screenW - s.width - 10
}

// Toggle switches panel visibility.
func (s *SettingsPanel) Toggle() bool {
	s.visible = !s.visible
	return s.visible
}

// Contains reports whether a screen point is over the visible panel.
func (s *SettingsPanel) Contains(px, py float32) bool {
	if !s.visible {
		return false
	}
	return px >= float32(s.x) && px <= float32(s.x+s.width) &&
		py >= float32(s.y) && py <= float32(s.y)+s.height(s.galaxyMode)
}

// height estimates the panel height for the given mode.
func (s *SettingsPanel) height(galaxyMode bool) float32 {
	if galaxyMode {
		return 530
	}
	return 270
}

// Draw renders the panel and returns the action the user triggered.
// Slider drags commit once on mouse release.
func (s *SettingsPanel) Draw(galaxyMode bool) Action {
	if !s.visible {
		return ActionNone
	}

	s.galaxyMode = galaxyMode
	r := s.renderer
	r.DrawPanel(s.x, s.y, s.width, int32(s.height(galaxyMode)))

	s.cy = float32(s.y + r.Theme.Padding)
	title := "Particle Field"
	if galaxyMode {
		title = "Galaxy"
	}
	s.cy = float32(r.DrawSectionHeader(s.x+r.Theme.Padding, int32(s.cy), title)) + 6

	var changed bool
	if galaxyMode {
		changed = s.drawGalaxy()
	} else {
		changed = s.drawField()
	}

	action := ActionNone
	if s.commit.Observe(changed, rl.IsMouseButtonDown(rl.MouseButtonLeft)) {
		action = ActionCommit
	}

	if a := s.drawButtons(galaxyMode); a != ActionNone {
		action = a
	}
	return action
}

func (s *SettingsPanel) drawGalaxy() bool {
	p := &s.galaxy
	changed := false

	count := s.intSlider("Count", p.Count, galaxyCountMin, galaxyCountMax)
	changed = changed || count != p.Count
	p.Count = count

	radius := s.floatSlider("Radius", p.Radius, galaxyRadiusMin, galaxyRadiusMax, "%.2f")
	changed = changed || radius != p.Radius
	p.Radius = radius

	size := s.floatSlider("Size", p.Size, galaxySizeMin, galaxySizeMax, "%.3f")
	changed = changed || size != p.Size
	p.Size = size

	branches := s.intSlider("Branches", p.Branches, galaxyBranchesMin, galaxyBranchesMax)
	changed = changed || branches != p.Branches
	p.Branches = branches

	spin := s.floatSlider("Spin", p.Spin, galaxySpinMin, galaxySpinMax, "%.2f")
	changed = changed || spin != p.Spin
	p.Spin = spin

	spread := s.floatSlider("Spread", p.Spread, galaxySpreadMin, galaxySpreadMax, "%.3f")
	changed = changed || spread != p.Spread
	p.Spread = spread

	// Colour pickers side by side
	pad := float32(s.renderer.Theme.Padding)
	x := float32(s.x) + pad
	rl.DrawText("Inner color", int32(x), int32(s.cy), s.renderer.Theme.FontSize, s.renderer.Theme.LabelColor)
	rl.DrawText("Outer color", int32(x)+140, int32(s.cy), s.renderer.Theme.FontSize, s.renderer.Theme.LabelColor)
	s.cy += 16

	inner := colorPicker(rl.Rectangle{X: x, Y: s.cy, Width: 100, Height: 100}, p.InnerColor)
	outer := colorPicker(rl.Rectangle{X: x + 140, Y: s.cy, Width: 100, Height: 100}, p.OuterColor)
	s.cy += 112

	if inner != p.InnerColor {
		p.InnerColor = inner
		changed = true
	}
	if outer != p.OuterColor {
		p.OuterColor = outer
		changed = true
	}
	return changed
}

func (s *SettingsPanel) drawField() bool {
	p := &s.field
	changed := false

	count := s.intSlider("Count", p.Count, fieldCountMin, fieldCountMax)
	changed = changed || count != p.Count
	p.Count = count

	extent := s.floatSlider("Extent", p.Extent, fieldExtentMin, fieldExtentMax, "%.1f")
	changed = changed || extent != p.Extent
	p.Extent = extent

	size := s.floatSlider("Size", p.Size, fieldSizeMin, fieldSizeMax, "%.3f")
	changed = changed || size != p.Size
	p.Size = size

	return changed
}

func (s *SettingsPanel) drawButtons(galaxyMode bool) Action {
	pad := float32(s.renderer.Theme.Padding)
	x := float32(s.x) + pad
	w := (float32(s.width) - pad*3) / 2
	h := float32(26)

	action := ActionNone
	if gui.Button(rl.Rectangle{X: x, Y: s.cy, Width: w, Height: h}, "Regenerate") {
		action = ActionCommit
	}
	if gui.Button(rl.Rectangle{X: x + w + pad, Y: s.cy, Width: w, Height: h}, "Reset") {
		action = ActionReset
	}
	s.cy += h + 6

	if gui.Button(rl.Rectangle{X: x, Y: s.cy, Width: w, Height: h}, "Export CSV") {
		action = ActionExport
	}
	modeLabel := "Show Galaxy"
	if galaxyMode {
		modeLabel = "Show Field"
	}
	if gui.Button(rl.Rectangle{X: x + w + pad, Y: s.cy, Width: w, Height: h}, modeLabel) {
		action = ActionToggleMode
	}
	s.cy += h + 6

	if gui.Button(rl.Rectangle{X: x, Y: s.cy, Width: w, Height: h}, "Load Preset") {
		action = ActionLoadPreset
	}
	if gui.Button(rl.Rectangle{X: x + w + pad, Y: s.cy, Width: w, Height: h}, "Save Preset") {
		action = ActionSavePreset
	}
	s.cy += h + 6

	return action
}

// floatSlider draws a labelled slider and returns the (possibly edited) value.
func (s *SettingsPanel) floatSlider(label string, value, min, max float64, format string) float64 {
	r := s.renderer
	x := float32(s.x + r.Theme.Padding)
	w := float32(s.width - r.Theme.Padding*2 - 60)

	rl.DrawText(label, int32(x), int32(s.cy), r.Theme.FontSize, r.Theme.LabelColor)
	s.cy += 14

	nv := gui.SliderBar(
		rl.Rectangle{X: x, Y: s.cy, Width: w, Height: float32(r.Theme.SliderHeight)},
		"", "",
		float32(value), float32(min), float32(max),
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+w+8), int32(s.cy+2), r.Theme.FontSize, r.Theme.ValueColor)
	s.cy += float32(r.Theme.SliderHeight) + 10

	// Ignore float32 round-off when the slider was not touched
	if nv == float32(value) {
		return value
	}
	return float64(nv)
}

// intSlider is floatSlider for integer settings.
func (s *SettingsPanel) intSlider(label string, value, min, max int) int {
	v := s.floatSlider(label, float64(value), float64(min), float64(max), "%.0f")
	return int(math.Round(v))
}

func colorPicker(bounds rl.Rectangle, c colorful.Color) colorful.Color {
	r, g, b := c.RGB255()
	picked := gui.ColorPicker(bounds, "", rl.Color{R: r, G: g, B: b, A: 255})
	if picked.R == r && picked.G == g && picked.B == b {
		return c
	}
	return colorful.Color{
		R: float64(picked.R) / 255,
		G: float64(picked.G) / 255,
		B: float64(picked.B) / 255,
	}
}
