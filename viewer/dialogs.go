package viewer

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/pthm-cable/galaxy/config"
	"github.com/pthm-cable/galaxy/telemetry"
)

var (
	csvFilter    = zenity.FileFilters{{Name: "CSV files", Patterns: []string{"*.csv"}}}
	presetFilter = zenity.FileFilters{{Name: "Presets", Patterns: []string{"*.yaml", "*.yml", "*.toml"}}}
)

// dialogResult folds a cancelled dialog into ok == false with no error.
func dialogResult(path string, err error) (string, bool, error) {
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	return path, path != "", nil
}

// exportCloud writes the displayed cloud to a user-chosen CSV file.
func (v *Viewer) exportCloud() {
	path, ok, err := dialogResult(zenity.SelectFileSave(
		zenity.Title("Export point cloud"),
		zenity.Filename(v.mode.String()+".csv"),
		zenity.ConfirmOverwrite(),
		csvFilter,
	))
	if !v.reportDialog("export", ok, err) {
		return
	}

	if err := telemetry.ExportCloudFile(path, v.last.Buffers); err != nil {
		v.fail("export", err)
		return
	}
	v.status = fmt.Sprintf("exported %d points to %s", v.last.Buffers.Count(), filepath.Base(path))
	slog.Info("exported point cloud", "path", path, "count", v.last.Buffers.Count())
}

// loadPreset replaces the working parameters with a preset file.
func (v *Viewer) loadPreset() {
	path, ok, err := dialogResult(zenity.SelectFile(
		zenity.Title("Load preset"),
		presetFilter,
	))
	if !v.reportDialog("load preset", ok, err) {
		return
	}

	cfg, err := config.Load(path)
	if err != nil {
		v.fail("load preset", err)
		return
	}
	v.applyConfig(cfg, "loaded "+filepath.Base(path))
}

// savePreset writes the current working parameters to a preset file.
func (v *Viewer) savePreset() {
	path, ok, err := dialogResult(zenity.SelectFileSave(
		zenity.Title("Save preset"),
		zenity.Filename("galaxy.yaml"),
		zenity.ConfirmOverwrite(),
		presetFilter,
	))
	if !v.reportDialog("save preset", ok, err) {
		return
	}

	preset := *v.cfg
	preset.Galaxy.SetParams(v.panel.Galaxy())
	preset.Field.SetParams(v.panel.Field())
	if err := preset.Write(path); err != nil {
		v.fail("save preset", err)
		return
	}
	v.status = "saved " + filepath.Base(path)
	slog.Info("saved preset", "path", path)
}

// reportDialog reports whether the dialog produced a path to act on.
func (v *Viewer) reportDialog(op string, ok bool, err error) bool {
	if err != nil {
		v.fail(op, err)
		return false
	}
	return ok
}

func (v *Viewer) fail(op string, err error) {
	v.status = op + " failed"
	slog.Error(op+" failed", "error", err)
}
