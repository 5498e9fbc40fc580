package viewer

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/galaxy/config"
	"github.com/pthm-cable/galaxy/points"
	"github.com/pthm-cable/galaxy/telemetry"
	"github.com/pthm-cable/galaxy/ui"
)

// handleAction applies the panel's request for this frame.
func (v *Viewer) handleAction(action ui.Action) {
	switch action {
	case ui.ActionCommit:
		v.regenerate()
	case ui.ActionReset:
		v.panel.SetGalaxy(v.cfg.Derived.Galaxy)
		v.panel.SetField(v.cfg.Derived.Field)
		v.regenerate()
	case ui.ActionToggleMode:
		v.toggleMode()
	case ui.ActionExport:
		v.exportCloud()
	case ui.ActionLoadPreset:
		v.loadPreset()
	case ui.ActionSavePreset:
		v.savePreset()
	}
}

// regenerate rebuilds the displayed cloud from a snapshot of the panel.
func (v *Viewer) regenerate() {
	var rec telemetry.RegenRecord

	switch v.mode {
	case ModeField:
		p := v.panel.Field()
		res := v.regen.Regenerate(func() points.Buffers { return v.fieldGen.Generate(p) })
		rec = telemetry.FieldRecord(p, res)
		v.last = res
	default:
		p := v.panel.Galaxy()
		res := v.regen.Regenerate(func() points.Buffers { return v.galaxyGen.Generate(p) })
		rec = telemetry.GalaxyRecord(p, res)
		v.last = res
	}

	v.lastStats.Count = rec.Count
	v.lastStats.MeanRadius = rec.MeanRadius
	v.lastStats.P90Radius = rec.P90Radius
	v.lastStats.MeanAbsY = rec.MeanAbsY
	v.perf.Record("regenerate", v.last.Elapsed)

	if v.cfg.Telemetry.LogRegenerations {
		slog.Info("regenerated",
			"mode", rec.Mode,
			"generation", rec.Generation,
			"count", rec.Count,
			"elapsed", v.last.Elapsed.Round(time.Microsecond),
			"run_id", v.output.RunID(),
		)
	}
	if err := v.output.WriteRegeneration(rec); err != nil {
		slog.Warn("failed to write regeneration record", "error", err)
	}
}

func (v *Viewer) toggleMode() {
	if v.mode == ModeGalaxy {
		v.mode = ModeField
	} else {
		v.mode = ModeGalaxy
	}
	v.status = ""
	v.regenerate()
}

// pollConfig applies a reloaded config file, if one is waiting.
func (v *Viewer) pollConfig() {
	if v.opts.Watcher == nil {
		return
	}
	select {
	case cfg := <-v.opts.Watcher.Updates():
		v.applyConfig(cfg, "reloaded "+cfg.Derived.Source)
	default:
	}
}

// applyConfig replaces the working parameters and regenerates.
func (v *Viewer) applyConfig(cfg *config.Config, status string) {
	v.cfg.Galaxy = cfg.Galaxy
	v.cfg.Field = cfg.Field
	v.cfg.Derived.Galaxy = cfg.Derived.Galaxy
	v.cfg.Derived.Field = cfg.Derived.Field

	v.panel.SetGalaxy(cfg.Derived.Galaxy)
	v.panel.SetField(cfg.Derived.Field)
	v.status = status
	slog.Info("config applied", "source", cfg.Derived.Source)
	v.regenerate()
}
