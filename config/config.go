// Package config provides configuration loading and access for the demos.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/galaxy/field"
	"github.com/pthm-cable/galaxy/galaxy"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all demo configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen" toml:"screen"`
	Camera    CameraConfig    `yaml:"camera" toml:"camera"`
	Galaxy    GalaxyConfig    `yaml:"galaxy" toml:"galaxy"`
	Field     FieldConfig     `yaml:"field" toml:"field"`
	Panel     PanelConfig     `yaml:"panel" toml:"panel"`
	Telemetry TelemetryConfig `yaml:"telemetry" toml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-" toml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width" toml:"width"`
	Height    int    `yaml:"height" toml:"height"`
	TargetFPS int    `yaml:"target_fps" toml:"target_fps"`
	Title     string `yaml:"title" toml:"title"`
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Distance    float64 `yaml:"distance" toml:"distance"`
	MinDistance float64 `yaml:"min_distance" toml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance" toml:"max_distance"`
	Fovy        float64 `yaml:"fovy" toml:"fovy"`                 // Vertical field of view in degrees
	Pitch       float64 `yaml:"pitch" toml:"pitch"`               // Initial elevation in radians
	RotateSpeed float64 `yaml:"rotate_speed" toml:"rotate_speed"` // Radians per pixel of drag
	ZoomSpeed   float64 `yaml:"zoom_speed" toml:"zoom_speed"`     // Distance units per wheel notch
	Damping     float64 `yaml:"damping" toml:"damping"`           // Fraction of velocity applied per frame (0 = no damping)
}

// GalaxyConfig holds the initial galaxy parameters.
type GalaxyConfig struct {
	Count      int     `yaml:"count" toml:"count"`
	Radius     float64 `yaml:"radius" toml:"radius"`
	Size       float64 `yaml:"size" toml:"size"`
	Branches   int     `yaml:"branches" toml:"branches"`
	Spin       float64 `yaml:"spin" toml:"spin"`
	Spread     float64 `yaml:"spread" toml:"spread"`
	InnerColor string  `yaml:"inner_color" toml:"inner_color"` // #rrggbb
	OuterColor string  `yaml:"outer_color" toml:"outer_color"` // #rrggbb
}

// FieldConfig holds the static particle field parameters.
type FieldConfig struct {
	Count  int     `yaml:"count" toml:"count"`
	Extent float64 `yaml:"extent" toml:"extent"`
	Size   float64 `yaml:"size" toml:"size"`
}

// PanelConfig holds settings panel layout.
type PanelConfig struct {
	Width          int     `yaml:"width" toml:"width"`
	DoubleClickSec float64 `yaml:"double_click_sec" toml:"double_click_sec"`
}

// TelemetryConfig holds logging switches.
type TelemetryConfig struct {
	LogRegenerations bool `yaml:"log_regenerations" toml:"log_regenerations"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Galaxy galaxy.Params
	Field  field.Params
	Source string // Expanded path of the user file, empty for defaults only
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a config built from the embedded defaults only.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML or TOML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}
		data, err := os.ReadFile(expanded)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := unmarshal(expanded, data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		cfg.Derived.Source = expanded
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if isTOML(path) {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// computeDerived validates the loaded sections and builds generator params.
func (c *Config) computeDerived() error {
	gp, err := c.Galaxy.Params()
	if err != nil {
		return fmt.Errorf("galaxy config: %w", err)
	}
	fp := c.Field.Params()
	if err := fp.Validate(); err != nil {
		return fmt.Errorf("field config: %w", err)
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance {
		return errors.New("camera config: need 0 < min_distance <= max_distance")
	}
	c.Derived.Galaxy = gp
	c.Derived.Field = fp
	return nil
}

// Params converts the section into validated generator parameters.
func (g GalaxyConfig) Params() (galaxy.Params, error) {
	inner, err := colorful.Hex(g.InnerColor)
	if err != nil {
		return galaxy.Params{}, fmt.Errorf("inner_color %q: %w", g.InnerColor, err)
	}
	outer, err := colorful.Hex(g.OuterColor)
	if err != nil {
		return galaxy.Params{}, fmt.Errorf("outer_color %q: %w", g.OuterColor, err)
	}
	p := galaxy.Params{
		Count:      g.Count,
		Radius:     g.Radius,
		Size:       g.Size,
		Branches:   g.Branches,
		Spin:       g.Spin,
		Spread:     g.Spread,
		InnerColor: inner,
		OuterColor: outer,
	}
	if err := p.Validate(); err != nil {
		return galaxy.Params{}, err
	}
	return p, nil
}

// SetParams stores p back into the section, e.g. before saving a preset.
func (g *GalaxyConfig) SetParams(p galaxy.Params) {
	g.Count = p.Count
	g.Radius = p.Radius
	g.Size = p.Size
	g.Branches = p.Branches
	g.Spin = p.Spin
	g.Spread = p.Spread
	g.InnerColor = p.InnerColor.Hex()
	g.OuterColor = p.OuterColor.Hex()
}

// Params converts the section into field parameters.
func (f FieldConfig) Params() field.Params {
	return field.Params{Count: f.Count, Extent: f.Extent, Size: f.Size}
}

// SetParams stores p back into the section.
func (f *FieldConfig) SetParams(p field.Params) {
	f.Count = p.Count
	f.Extent = p.Extent
	f.Size = p.Size
}

// Write writes the configuration to path as TOML or YAML depending on the extension.
func (c *Config) Write(path string) error {
	if isTOML(path) {
		return c.WriteTOML(path)
	}
	return c.WriteYAML(path)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// WriteTOML writes the configuration to a TOML file.
func (c *Config) WriteTOML(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
