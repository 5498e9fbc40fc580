// Package telemetry writes regeneration logs and point cloud exports.
package telemetry

import (
	"time"

	"github.com/pthm-cable/galaxy/field"
	"github.com/pthm-cable/galaxy/galaxy"
	"github.com/pthm-cable/galaxy/scene"
)

// Demo modes recorded in the regeneration log.
const (
	ModeGalaxy = "galaxy"
	ModeField  = "field"
)

// RegenRecord describes one regeneration.
type RegenRecord struct {
	RunID      string `csv:"run_id"`
	Generation int    `csv:"generation"`
	Mode       string `csv:"mode"`

	// Parameters (galaxy-only fields are zero in field mode)
	Count      int     `csv:"count"`
	Radius     float64 `csv:"radius"`
	Size       float64 `csv:"size"`
	Branches   int     `csv:"branches"`
	Spin       float64 `csv:"spin"`
	Spread     float64 `csv:"spread"`
	InnerColor string  `csv:"inner_color"`
	OuterColor string  `csv:"outer_color"`
	Extent     float64 `csv:"extent"`

	// Result
	ElapsedMS  float64 `csv:"elapsed_ms"`
	MeanRadius float64 `csv:"mean_radius"`
	P90Radius  float64 `csv:"p90_radius"`
	MeanAbsY   float64 `csv:"mean_abs_y"`
}

// GalaxyRecord builds a record for a galaxy regeneration.
func GalaxyRecord(p galaxy.Params, res scene.Result) RegenRecord {
	rec := baseRecord(ModeGalaxy, res)
	rec.Count = p.Count
	rec.Radius = p.Radius
	rec.Size = p.Size
	rec.Branches = p.Branches
	rec.Spin = p.Spin
	rec.Spread = p.Spread
	rec.InnerColor = p.InnerColor.Hex()
	rec.OuterColor = p.OuterColor.Hex()
	return rec
}

// FieldRecord builds a record for a particle field regeneration.
func FieldRecord(p field.Params, res scene.Result) RegenRecord {
	rec := baseRecord(ModeField, res)
	rec.Count = p.Count
	rec.Size = p.Size
	rec.Extent = p.Extent
	return rec
}

func baseRecord(mode string, res scene.Result) RegenRecord {
	stats := galaxy.Summarize(res.Buffers)
	return RegenRecord{
		Generation: res.Generation,
		Mode:       mode,
		ElapsedMS:  float64(res.Elapsed) / float64(time.Millisecond),
		MeanRadius: stats.MeanRadius,
		P90Radius:  stats.P90Radius,
		MeanAbsY:   stats.MeanAbsY,
	}
}
