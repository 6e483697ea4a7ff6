package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/san-kum/coordsim/internal/config"
	"github.com/san-kum/coordsim/internal/coord"
	"github.com/san-kum/coordsim/internal/transform"
	"github.com/san-kum/coordsim/internal/tui"
	"github.com/san-kum/coordsim/internal/viz"
)

var (
	logLevel   string
	configFile string
	preset     string
	plot       bool
	scene      bool
	degrees    bool
	plotWidth  int
	plotHeight int
)

// main registers the coordsim commands and runs the reference demo when no
// subcommand is given. It exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:               "coordsim",
		Short:             "3D point coordinates and transforms",
		PersistentPreRun:  setupLogging,
		RunE:              runDemo,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run the reference transform sequences",
		RunE:  runDemo,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "apply a transform script to a point",
		RunE:  runScript,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "transform script (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use a preset script")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot x, y, z by step")
	runCmd.Flags().BoolVar(&scene, "scene", false, "draw the trace in 3D")
	runCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width")
	runCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")

	convertCmd := &cobra.Command{
		Use:       "convert [cartesian|cylindrical|spherical] a b c",
		Short:     "show a point in all three coordinate systems",
		Args:      cobra.ExactArgs(4),
		ValidArgs: []string{config.SystemCartesian, config.SystemCylindrical, config.SystemSpherical},
		RunE:      convertPoint,
	}
	convertCmd.Flags().BoolVar(&degrees, "degrees", false, "angles are in degrees")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scripts",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s %s start, %d steps\n", name, p.Start.System, len(p.Steps))
			}
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive transform view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScript()
			if err != nil {
				return err
			}
			start, err := cfg.StartPoint()
			if err != nil {
				return err
			}
			return tui.RunInteractive(start)
		},
	}
	tuiCmd.Flags().StringVar(&configFile, "config", "", "script whose start point is used")
	tuiCmd.Flags().StringVar(&preset, "preset", "", "preset whose start point is used")

	rootCmd.AddCommand(demoCmd, runCmd, convertCmd, presetsCmd, tuiCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(logLevel),
	})))
}

func runDemo(cmd *cobra.Command, args []string) error {
	for _, name := range []string{"reference", "reference_b"} {
		if err := execute(cmd.Context(), config.GetPreset(name)); err != nil {
			return err
		}
	}
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadScript()
	if err != nil {
		return err
	}
	if cfg.LogLevel != "" && !cmd.Flags().Changed("log-level") {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		})))
	}
	return execute(cmd.Context(), cfg)
}

// loadScript resolves --config (which wins) or --preset, falling back to
// the default script.
func loadScript() (*config.Config, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func execute(ctx context.Context, cfg *config.Config) error {
	start, err := cfg.StartPoint()
	if err != nil {
		return err
	}
	steps, err := cfg.PipelineSteps()
	if err != nil {
		return err
	}

	logger := slog.Default().With("script", cfg.Name)
	p := transform.New(transform.NewRegistry(), logger)
	p.AddMetric(transform.NewNormDrift())
	p.AddMetric(transform.NewPathLength())

	logger.Info("running script", "start", start.String(), "steps", len(steps))
	result, err := p.Run(ctx, start, steps)
	if err != nil {
		return fmt.Errorf("script %s: %w", cfg.Name, err)
	}

	fmt.Println(viz.Title.Render(cfg.Name))
	fmt.Print(viz.RenderTrace(result))
	fmt.Println(viz.Panel.Render(viz.RenderViews(result.Final().Views())))

	if plot {
		fmt.Println(viz.PlotComponents(result, plotWidth, plotHeight))
	}
	if scene {
		c := viz.NewCanvas(plotWidth, plotHeight)
		viz.NewScene().Render(c, result.Points)
		fmt.Print(c.String())
	}
	fmt.Println()

	// a rejected axis is only a warning; a blown-up point fails the script
	if err := result.Err(); errors.Is(err, transform.ErrNonFinite) {
		return fmt.Errorf("script %s: %w", cfg.Name, err)
	}
	return nil
}

func convertPoint(cmd *cobra.Command, args []string) error {
	var v [3]float64
	for i, s := range args[1:] {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", s, err)
		}
		v[i] = f
	}
	angle := func(a float64) float64 {
		if degrees {
			return mgl64.DegToRad(a)
		}
		return a
	}

	var p coord.Point
	switch args[0] {
	case config.SystemCartesian:
		p.SetCartesian(v[0], v[1], v[2])
	case config.SystemCylindrical:
		p.SetCylindrical(v[0], angle(v[1]), v[2])
	case config.SystemSpherical:
		p.SetSpherical(v[0], angle(v[1]), angle(v[2]))
	default:
		return fmt.Errorf("unknown coordinate system: %s", args[0])
	}

	fmt.Println(viz.Panel.Render(viz.RenderViews(p.Views())))
	return nil
}
