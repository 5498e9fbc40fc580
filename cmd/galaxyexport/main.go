// Galaxy export tool - generates a point cloud without a window and writes it as CSV.
//
// Usage: go run ./cmd/galaxyexport -out galaxy.csv [-config preset.yaml] [-branches 5]
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"

	"github.com/pthm-cable/galaxy/config"
	"github.com/pthm-cable/galaxy/field"
	"github.com/pthm-cable/galaxy/galaxy"
	"github.com/pthm-cable/galaxy/points"
	"github.com/pthm-cable/galaxy/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Base config YAML/TOML file (empty = use defaults)")
	out := flag.String("out", "", "Output CSV path (required)")
	mode := flag.String("mode", telemetry.ModeGalaxy, "galaxy or field")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")

	// Galaxy overrides (negative / empty = keep config value)
	count := flag.Int("count", -1, "Particle count")
	radius := flag.Float64("radius", -1, "Galaxy radius")
	branches := flag.Int("branches", -1, "Spiral arms")
	spin := flag.Float64("spin", 0, "Spin coefficient (applied when -set-spin)")
	setSpin := flag.Bool("set-spin", false, "Use -spin instead of the config value")
	spread := flag.Float64("spread", -1, "Jitter spread")
	inner := flag.String("inner", "", "Inner color #rrggbb")
	outer := flag.String("outer", "", "Outer color #rrggbb")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if *out == "" {
		slog.Error("-out is required")
		os.Exit(2)
	}
	outPath, err := homedir.Expand(*out)
	if err != nil {
		slog.Error("invalid output path", "error", err)
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	var buf points.Buffers
	start := time.Now()

	switch *mode {
	case telemetry.ModeGalaxy:
		p := cfg.Derived.Galaxy
		if *count >= 0 {
			p.Count = *count
		}
		if *radius > 0 {
			p.Radius = *radius
		}
		if *branches > 0 {
			p.Branches = *branches
		}
		if *setSpin {
			p.Spin = *spin
		}
		if *spread >= 0 {
			p.Spread = *spread
		}
		if p.InnerColor, err = colorOverride(*inner, p.InnerColor); err != nil {
			slog.Error("invalid -inner", "error", err)
			os.Exit(2)
		}
		if p.OuterColor, err = colorOverride(*outer, p.OuterColor); err != nil {
			slog.Error("invalid -outer", "error", err)
			os.Exit(2)
		}
		if err := p.Validate(); err != nil {
			slog.Error("invalid galaxy parameters", "error", err)
			os.Exit(2)
		}
		buf = galaxy.NewGenerator(rngSeed).Generate(p)

	case telemetry.ModeField:
		p := cfg.Derived.Field
		if *count >= 0 {
			p.Count = *count
		}
		if err := p.Validate(); err != nil {
			slog.Error("invalid field parameters", "error", err)
			os.Exit(2)
		}
		buf = field.NewGenerator(rngSeed).Generate(p)

	default:
		slog.Error("unknown mode", "mode", *mode)
		os.Exit(2)
	}
	elapsed := time.Since(start)

	if err := telemetry.ExportCloudFile(outPath, buf); err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}

	stats := galaxy.Summarize(buf)
	slog.Info("exported point cloud",
		"mode", *mode,
		"path", outPath,
		"seed", rngSeed,
		"count", stats.Count,
		"elapsed", elapsed.Round(time.Microsecond),
		"mean_radius", stats.MeanRadius,
		"std_radius", stats.StdRadius,
		"p90_radius", stats.P90Radius,
		"mean_abs_y", stats.MeanAbsY,
	)
}

func colorOverride(hex string, fallback colorful.Color) (colorful.Color, error) {
	if hex == "" {
		return fallback, nil
	}
	return colorful.Hex(hex)
}
