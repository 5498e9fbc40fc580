package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/galaxy/points"
)

// ParticleRecord is one exported particle.
type ParticleRecord struct {
	Index int     `csv:"index"`
	X     float32 `csv:"x"`
	Y     float32 `csv:"y"`
	Z     float32 `csv:"z"`
	R     float32 `csv:"r"`
	G     float32 `csv:"g"`
	B     float32 `csv:"b"`
}

// ParticleRecords flattens buffers into exportable records.
func ParticleRecords(buf points.Buffers) []ParticleRecord {
	records := make([]ParticleRecord, buf.Count())
	for i := range records {
		x, y, z := buf.Position(i)
		r, g, b := buf.Color(i)
		records[i] = ParticleRecord{Index: i, X: x, Y: y, Z: z, R: r, G: g, B: b}
	}
	return records
}

// ExportCloud writes buf as CSV to w.
func ExportCloud(w io.Writer, buf points.Buffers) error {
	if err := gocsv.Marshal(ParticleRecords(buf), w); err != nil {
		return fmt.Errorf("writing particles: %w", err)
	}
	return nil
}

// ExportCloudFile writes buf as CSV to path, replacing any existing file.
func ExportCloudFile(path string, buf points.Buffers) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := ExportCloud(f, buf); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
