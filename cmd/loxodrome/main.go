package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/loxodrome/internal/config"
	"github.com/san-kum/loxodrome/internal/export"
	"github.com/san-kum/loxodrome/internal/metrics"
	"github.com/san-kum/loxodrome/internal/raster"
	"github.com/san-kum/loxodrome/internal/scene"
	"github.com/san-kum/loxodrome/internal/storage"
	"github.com/san-kum/loxodrome/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "loxodrome",
		Short:         "rhumb-line ribbon renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".loxodrome", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the animation to a gif or png sequence",
		RunE:  runRender,
	}
	renderCmd.Flags().String("format", "gif", "output format (gif|png)")
	renderCmd.Flags().StringP("out", "o", "", "output file or directory")
	renderCmd.Flags().Int("width", 0, "frame width in pixels")
	renderCmd.Flags().Int("height", 0, "frame height in pixels")
	renderCmd.Flags().Int("fps", 0, "frame rate")
	renderCmd.Flags().Bool("no-store", false, "do not record the run")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "write one frame as svg",
		RunE:  runSVG,
	}
	svgCmd.Flags().StringP("out", "o", "loxodrome.svg", "output file")
	svgCmd.Flags().Float64("at", -1, "scene time in seconds (negative = final frame)")
	svgCmd.Flags().Int("width", 0, "image width")
	svgCmd.Flags().Int("height", 0, "image height")
	svgCmd.Flags().Bool("no-store", false, "do not record the run")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "print sampled ribbon points",
		RunE:  runSample,
	}
	sampleCmd.Flags().String("format", "csv", "output format (csv|json)")
	sampleCmd.Flags().Int("ribbon", -1, "ribbon index (-1 = all)")
	sampleCmd.Flags().StringP("out", "o", "", "output file (default stdout)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot longitude and height of one ribbon",
		RunE:  runPlot,
	}
	plotCmd.Flags().Int("ribbon", 0, "ribbon index")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "play the animation in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().Int("fps", 0, "frame rate")
	liveCmd.Flags().String("theme", viz.ThemeAutumn.Name, fmt.Sprintf("ui theme %v", viz.ThemeNames()))

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}

	rootCmd.AddCommand(renderCmd, svgCmd, sampleCmd, plotCmd, liveCmd, presetsCmd, listCmd, showCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig resolves defaults, then the preset, then the config file.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		if err := config.LoadOnto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func buildScene(cmd *cobra.Command) (*config.Config, *scene.Scene, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := applyOutputFlags(cmd, cfg); err != nil {
		return nil, nil, err
	}
	s, err := scene.Build(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

func record(cmd *cobra.Command, cfg *config.Config, s *scene.Scene, out storage.Output, elapsed time.Duration) {
	if skip, _ := cmd.Flags().GetBool("no-store"); skip {
		return
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		slog.Warn("run not recorded", "err", err)
		return
	}
	runID, err := st.Save(cfg, s, out, elapsed)
	if err != nil {
		slog.Warn("run not recorded", "err", err)
		return
	}
	fmt.Printf("run: %s\n", runID)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, s, err := buildScene(cmd)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")
	r := raster.NewRenderer(s, cfg.Output.Width, cfg.Output.Height)
	start := time.Now()
	out := storage.Output{Kind: format}

	switch format {
	case "gif":
		if outPath == "" {
			outPath = "loxodrome.gif"
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := raster.WriteGIF(cmd.Context(), f, s, r, cfg.Output.FPS); err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		out.Frames = len(s.FrameTimes(cfg.Output.FPS))
	case "png":
		if outPath == "" {
			outPath = "frames"
		}
		n, err := raster.WritePNGs(cmd.Context(), outPath, s, r, cfg.Output.FPS)
		if err != nil {
			return err
		}
		out.Frames = n
	default:
		return fmt.Errorf("unknown format: %s (available: gif, png)", format)
	}

	elapsed := time.Since(start)
	out.Path = outPath
	slog.Info("rendered", "format", format, "out", outPath, "frames", out.Frames, "elapsed", elapsed.Round(time.Millisecond))
	record(cmd, cfg, s, out, elapsed)
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	cfg, s, err := buildScene(cmd)
	if err != nil {
		return err
	}

	at, _ := cmd.Flags().GetFloat64("at")
	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		outPath = "loxodrome.svg"
	}
	frame := s.Final()
	if at >= 0 {
		frame = s.Frame(at)
	}

	start := time.Now()
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.WriteSVG(f, s, frame, cfg.Output.Width, cfg.Output.Height); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	slog.Info("wrote svg", "out", outPath, "time", frame.Time)
	record(cmd, cfg, s, storage.Output{Kind: "svg", Path: outPath, Frames: 1}, time.Since(start))
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")
	ribbon, _ := cmd.Flags().GetInt("ribbon")
	filter, err := ribbonFilter(ribbon, cfg.Ribbons)
	if err != nil {
		return err
	}
	if format != "csv" && format != "json" {
		return fmt.Errorf("unknown format: %s (available: csv, json)", format)
	}
	s, err := scene.Build(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if outPath == "" {
		return writeSamples(os.Stdout, s, format, filter)
	}
	return writeSamplesFile(outPath, s, format, filter)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ribbon, _ := cmd.Flags().GetInt("ribbon")
	if ribbon < 0 || ribbon >= cfg.Ribbons {
		return fmt.Errorf("ribbon %d out of range [0, %d)", ribbon, cfg.Ribbons)
	}

	params, rng := cfg.Params(), cfg.Range()
	n := rng.Len()
	lon := make([]float64, n)
	z := make([]float64, n)
	pts := make([]r3.Vec, n)
	for i := 0; i < n; i++ {
		t := rng.At(i)
		lon[i] = params.Longitude(ribbon, t)
		pts[i] = params.Point(ribbon, t)
		z[i] = pts[i].Z
	}

	fmt.Printf("ribbon: %d  offset: %.4f rad  samples: %d\n", ribbon, params.AngleOffset(ribbon), n)
	for _, r := range metrics.Evaluate(pts, metrics.Standard(params.Radius)...) {
		fmt.Printf("  %-13s %.6g\n", r.Name, r.Value)
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(lon,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("longitude (rad) vs t"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(z,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("z vs t"),
	))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("fps") {
		cfg.Output.FPS, _ = cmd.Flags().GetInt("fps")
	}
	theme, _ := cmd.Flags().GetString("theme")
	if err := viz.SetTheme(theme); err != nil {
		return err
	}
	s, err := scene.Build(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewLiveModel(s, cfg.Output.FPS), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tFRAMES\tRIBBONS\tELAPSED\tOUTPUT")

	for _, run := range runs {
		ribbons := 0
		if run.Config != nil {
			ribbons = run.Config.Ribbons
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			run.ID,
			run.Output.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Output.Frames,
			ribbons,
			run.Elapsed.Round(time.Millisecond),
			run.Output.Path,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("output: %s (%s, %d frames)\n", filepath.Clean(meta.Output.Path), meta.Output.Kind, meta.Output.Frames)
	fmt.Printf("duration: %.2fs  elapsed: %s\n", meta.Duration, meta.Elapsed.Round(time.Millisecond))
	if meta.Config != nil {
		c := meta.Config
		fmt.Printf("radius: %g  ribbons: %d  turns: %g  t: [%g, %g] dt %g\n", c.Radius, c.Ribbons, c.Turns, c.TMin, c.TMax, c.Dt)
	}
	fmt.Printf("ribbons stored: %d\n\n", len(samples))

	radius := config.DefaultRadius
	if meta.Config != nil {
		radius = meta.Config.Radius
	}

	indices := make([]int, 0, len(samples))
	for i := range samples {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RIBBON\tPOINTS\tARC\tDRIFT\tCONTAIN\tTURNS")
	for _, i := range indices {
		res := metrics.Evaluate(samples[i], metrics.Standard(radius)...)
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.2e\t%.3f\t%.4f\n",
			i, len(samples[i]), res[0].Value, res[1].Value, res[2].Value, res[3].Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	pts := samples[0]
	if len(pts) == 0 {
		return nil
	}
	z := make([]float64, len(pts))
	for i, p := range pts {
		z[i] = p.Z
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(z,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("ribbon 0 z profile"),
	))
	return nil
}
