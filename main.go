package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mitchellh/go-homedir"

	"github.com/pthm-cable/galaxy/config"
	"github.com/pthm-cable/galaxy/viewer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml or config.toml (empty = use defaults)")
	mode := flag.String("mode", "galaxy", "Demo to start with: galaxy or field")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = random)")
	outputDir := flag.String("output-dir", "", "Directory for the regeneration log and config snapshot")
	watch := flag.Bool("watch", false, "Reload -config when the file changes")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	startMode, ok := viewer.ParseMode(*mode)
	if !ok {
		slog.Error("unknown mode", "mode", *mode)
		os.Exit(1)
	}

	out, err := homedir.Expand(*outputDir)
	if err != nil {
		slog.Error("invalid output dir", "error", err)
		os.Exit(1)
	}

	opts := viewer.Options{
		Seed:      *seed,
		Mode:      startMode,
		OutputDir: out,
	}

	if *watch {
		if *configPath == "" {
			slog.Error("-watch needs -config")
			os.Exit(1)
		}
		w, err := config.Watch(*configPath)
		if err != nil {
			slog.Error("failed to watch config", "error", err)
			os.Exit(1)
		}
		defer w.Close()
		opts.Watcher = w
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	v := viewer.New(cfg, opts)
	defer v.Unload()

	slog.Info("viewer started",
		"mode", v.Mode().String(),
		"seed", *seed,
		"config", cfg.Derived.Source,
	)

	for !rl.WindowShouldClose() {
		v.Update()
		v.Draw()
	}
}
