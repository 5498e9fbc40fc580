package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title      string
	Mode       string
	Particles  int
	Generation int
	LastRegen  time.Duration
	MeanRadius float64
	P90Radius  float64
	Thickness  float64
	FPS        int32
	Status     string
	PerfTimes  map[string]time.Duration
	PerfOrder  []string
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	padding := r.Theme.Padding
	width := int32(260)

	lines := 6 + len(data.PerfOrder)
	height := int32(lines)*r.Theme.LineHeight + padding*2 + 24
	r.DrawPanel(10, 10, width, height)

	x := int32(10) + padding
	y := int32(10) + padding

	// Title
	rl.DrawText(data.Title, x, y, 18, rl.White)
	y += 24

	y = r.DrawLabelValue(x, y, "Mode", data.Mode)
	y = r.DrawLabelValue(x, y, "Points", fmt.Sprintf("%d", data.Particles))
	y = r.DrawLabelValue(x, y, "Gen", fmt.Sprintf("#%d in %s", data.Generation, data.LastRegen.Round(time.Microsecond)))
	y = r.DrawLabelValue(x, y, "Radius", fmt.Sprintf("mean %.2f  p90 %.2f", data.MeanRadius, data.P90Radius))
	y = r.DrawLabelValue(x, y, "|y|", fmt.Sprintf("%.3f", data.Thickness))
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", data.FPS))

	for _, name := range data.PerfOrder {
		y = r.DrawLabelValue(x, y, name, data.PerfTimes[name].Round(time.Microsecond).String())
	}

	if data.Status != "" {
		rl.DrawText(data.Status, x, y+4, r.Theme.FontSize, r.Theme.SectionHeader)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
