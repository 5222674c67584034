package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/constellation/internal/config"
	"github.com/san-kum/constellation/internal/export"
	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/logging"
	"github.com/san-kum/constellation/internal/loop"
	"github.com/san-kum/constellation/internal/metrics"
	"github.com/san-kum/constellation/internal/sim"
	"github.com/san-kum/constellation/internal/viz"
)

var (
	// Config file
	configFile string
	preset     string
	seed       int64
	logLevel   string
	// Window
	width  int
	height int
	fps    int
	// Terminal page
	logFile string
	theme   string
	// Snapshot
	frames     int
	outFile    string
	pointerArg string
	braille    bool
	// Headless run
	duration float64
	// Ensemble
	runs           int
	ensembleFrames int
)

// main registers the commands and opens the configured backend when no
// subcommand is given. It exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "constellation",
		Short:        "interactive particle constellation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, "")
			if err != nil {
				return err
			}
			defer log.Sync()
			return runBackend(cfg, log)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "window preset")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the field in a native window",
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "window width")
	guiCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "window height")
	guiCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "show the field and page in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	liveCmd.Flags().StringVar(&theme, "theme", "azure", "colour theme (azure, minimal)")
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a frame to svg",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&frames, "frames", 60, "frames to simulate before capture")
	snapshotCmd.Flags().StringVar(&outFile, "out", "constellation.svg", "output file")
	snapshotCmd.Flags().StringVar(&pointerArg, "pointer", "", "pointer position as x,y")
	snapshotCmd.Flags().BoolVar(&braille, "braille", false, "export the terminal rendering instead")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame throughput",
		RunE:  benchField,
	}

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run many seeds in parallel and compare their metrics",
		RunE:  runEnsemble,
	}
	ensembleCmd.Flags().IntVar(&runs, "runs", 8, "number of seeds")
	ensembleCmd.Flags().IntVar(&ensembleFrames, "frames", 600, "frames per run")
	ensembleCmd.Flags().StringVar(&pointerArg, "pointer", "", "pointer position as x,y")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the field headless in real time",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", 5.0, "duration in seconds")
	runCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list window presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tSIZE\tFPS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				rate := "-"
				if p.FPS > 0 {
					rate = strconv.Itoa(p.FPS)
				}
				fmt.Fprintf(w, "%s\t%dx%d\t%s\n", name, p.Width, p.Height, rate)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(guiCmd, liveCmd, snapshotCmd, benchCmd, ensembleCmd, runCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the config: defaults, then the preset, then the config
// file, then flags the user actually set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOnto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") || configFile == "" {
		cfg.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Lookup("width") != nil && flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Lookup("height") != nil && flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.Window.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the config and builds the logger. An output of "" logs to
// stderr.
func setup(cmd *cobra.Command, output string) (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(logging.Config{
		Level:   cfg.LogLevel,
		Output:  output,
		Backend: cfg.Backend,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return cfg, log, nil
}

func runBackend(cfg *config.Config, log *zap.Logger) error {
	switch cfg.Backend {
	case config.BackendTerminal:
		return viz.Run(liveOptions(cfg, zap.NewNop()))
	case windowBackend:
		return openWindow(cfg, log)
	default:
		return fmt.Errorf("%w: %s is not built into this binary (built with %s)",
			config.ErrUnknownBackend, cfg.Backend, windowBackend)
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg.Backend = windowBackend
	return openWindow(cfg, log)
}

func liveOptions(cfg *config.Config, log *zap.Logger) viz.Options {
	return viz.Options{
		Sections: cfg.Page.Sections,
		FPS:      cfg.Window.FPS,
		Seed:     cfg.Seed,
		Theme:    theme,
		Log:      log,
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// the terminal owns stdout and stderr while the UI runs
	log := zap.NewNop()
	if logFile != "" {
		log, err = logging.New(logging.Config{
			Level:    cfg.LogLevel,
			Output:   logFile,
			Encoding: "json",
			Backend:  config.BackendTerminal,
		})
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer log.Sync()
	}

	return viz.Run(liveOptions(cfg, log))
}

func parsePointer(s string) (x, y float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid pointer %q: want x,y", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid pointer x: %w", err)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid pointer y: %w", err)
	}
	return x, y, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	if frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", frames)
	}

	vp := field.Viewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	f := field.New(vp, rand.New(rand.NewSource(cfg.Seed)))
	if pointerArg != "" {
		x, y, err := parsePointer(pointerArg)
		if err != nil {
			return err
		}
		f.OnPointerMove(x, y)
	}

	var surface field.Surface
	var write func() error
	if braille {
		const scale = 4.0
		canvas := viz.NewCanvas(int(vp.Width/(2*scale)), int(vp.Height/(4*scale)))
		surface = viz.NewCanvasSurface(canvas, scale)
		write = func() error {
			svg := export.CanvasToSVG(canvas, scale, field.ParticleColor)
			if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
				return fmt.Errorf("write %s: %w", outFile, err)
			}
			return nil
		}
	} else {
		svg := export.NewSVG()
		surface = svg
		write = func() error { return svg.WriteFile(outFile) }
	}

	sched := loop.NewManual(time.Second / time.Duration(cfg.Window.FPS))
	l := loop.New(sched, func(time.Time) { f.Tick(surface) })
	l.Start()
	ran := sched.StepN(frames)
	l.Stop()

	if err := write(); err != nil {
		return err
	}
	st := f.Stats()
	log.Info("snapshot written",
		zap.String("path", outFile),
		zap.Int("frames", ran),
		zap.Int("connections", st.Connections),
	)
	fmt.Printf("wrote %s (frame %d, %d links)\n", outFile, st.Frame, st.Connections)
	return nil
}

func benchField(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	counts := []int{100, 1000, 10000}

	fmt.Printf("benchmarking %d particles\n\n", field.ParticleCount)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tPOINTER\tFRAMES\tTIME\tFRAMES/SEC\tLINKS")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		vp := field.Viewport{Width: float64(p.Width), Height: float64(p.Height)}
		centre := &field.PointerState{X: vp.Width / 2, Y: vp.Height / 2, Present: true}

		for _, n := range counts {
			for _, ptr := range []*field.PointerState{nil, centre} {
				start := time.Now()
				result, err := sim.Run(cmd.Context(), sim.Config{Viewport: vp, Frames: n, Pointer: ptr}, cfg.Seed, sim.Discard{})
				if err != nil {
					return err
				}
				elapsed := time.Since(start)

				fmt.Fprintf(w, "%s\t%t\t%d\t%v\t%.0f\t%.1f\n",
					name, ptr != nil, n, elapsed, float64(n)/elapsed.Seconds(), result.Metrics["connections"])
			}
		}
	}

	return w.Flush()
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	if runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", runs)
	}

	simCfg := sim.Config{
		Viewport: field.Viewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)},
		Frames:   ensembleFrames,
		FPS:      cfg.Window.FPS,
	}
	if pointerArg != "" {
		x, y, err := parsePointer(pointerArg)
		if err != nil {
			return err
		}
		simCfg.Pointer = &field.PointerState{X: x, Y: y, Present: true}
	}

	start := time.Now()
	results, err := sim.NewEnsemble(simCfg, runs, cfg.Seed).Run(cmd.Context(), func() field.Surface { return sim.Discard{} })
	if err != nil {
		return err
	}
	log.Info("ensemble finished", zap.Int("runs", runs), zap.Duration("elapsed", time.Since(start)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tFRAMES\tLINKS\tDISPLACEMENT\tOUT OF BOUNDS")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%.1f\t%.2f\t%.2f\n",
			r.Seed, r.Frames, r.Metrics["connections"], r.Metrics["displacement"], r.Metrics["out_of_bounds"])
	}
	return w.Flush()
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(duration*float64(time.Second)))
	defer cancel()

	vp := field.Viewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	f := field.New(vp, rand.New(rand.NewSource(cfg.Seed)))
	rec := metrics.NewRecorder(0, metrics.Default()...)

	sched := loop.NewTicker(cfg.Window.FPS)
	l := loop.New(sched, func(now time.Time) {
		f.Tick(sim.Discard{})
		rec.Observe(f)
		if st := f.Stats(); st.Frame%cfg.Window.FPS == 0 {
			log.Info("frame",
				zap.Int("frame", st.Frame),
				zap.Int("connections", st.Connections),
				zap.Float64("displacement", rec.Values()["displacement"]),
			)
		}
	})

	log.Info("run started",
		zap.Float64("seconds", duration),
		zap.Int("fps", cfg.Window.FPS),
		zap.Int64("seed", cfg.Seed),
	)
	l.Start()
	err = sched.Run(ctx)
	l.Stop()
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("run finished", zap.Int("frames", l.Frames()))

	if data := rec.History("connections"); len(data) > 1 {
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("connections per frame"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMEAN")
	for _, m := range rec.Metrics() {
		fmt.Fprintf(w, "%s\t%.3f\n", m.Name(), m.Value())
	}
	return w.Flush()
}
