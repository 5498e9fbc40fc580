package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/pthm-cable/galaxy/config"
)

// OutputManager handles structured output of regeneration logs.
// A nil *OutputManager is valid and discards everything.
type OutputManager struct {
	dir      string
	runID    string
	regenLog *os.File

	// Track if headers have been written
	regenHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir, runID: uuid.NewString()}

	regenPath := filepath.Join(dir, "regenerations.csv")
	f, err := os.Create(regenPath)
	if err != nil {
		return nil, fmt.Errorf("creating regenerations.csv: %w", err)
	}
	om.regenLog = f

	return om, nil
}

// RunID identifies this run in every record.
func (om *OutputManager) RunID() string {
	if om == nil {
		return ""
	}
	return om.runID
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteRegeneration appends a record to regenerations.csv.
func (om *OutputManager) WriteRegeneration(rec RegenRecord) error {
	if om == nil {
		return nil
	}

	rec.RunID = om.runID
	records := []RegenRecord{rec}

	if !om.regenHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.regenLog); err != nil {
			return fmt.Errorf("writing regeneration: %w", err)
		}
		om.regenHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.regenLog); err != nil {
			return fmt.Errorf("writing regeneration: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil || om.regenLog == nil {
		return nil
	}
	return om.regenLog.Close()
}
