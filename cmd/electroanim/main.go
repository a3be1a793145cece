package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/voltlab/electroanim/internal/config"
	"github.com/voltlab/electroanim/internal/export"
	"github.com/voltlab/electroanim/internal/metrics"
	"github.com/voltlab/electroanim/internal/scenes"
	"github.com/voltlab/electroanim/internal/store"
	"github.com/voltlab/electroanim/internal/tikz"
	"github.com/voltlab/electroanim/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	fps        int
	width      int
	height     int
	vin        float64
	r1         float64
	r2         float64
	rl         float64
	leds       int
	vmin       float64
	gifPath    string
	svgDir     string
	compile    bool
	outDir     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "electroanim",
		Short: "animated electronics lessons in the terminal",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".electroanim", "data directory")

	renderCmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "render a scene headless and save the trace",
		Args:  cobra.ExactArgs(1),
		RunE:  renderScene,
	}
	addSceneFlags(renderCmd)
	renderCmd.Flags().StringVar(&gifPath, "gif", "", "also write an animated GIF to this path")
	renderCmd.Flags().StringVar(&svgDir, "svg", "", "also write per-frame SVGs into this directory")

	liveCmd := &cobra.Command{
		Use:   "live [scene]",
		Short: "play a scene in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list available scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scenes.NewRegistry().List() {
				fmt.Println(name)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scene]",
		Short: "list available presets for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scene: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved renders",
		RunE:  listRenders,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [render_id]",
		Short: "plot a saved render's parameter trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRender,
	}

	exportCmd := &cobra.Command{
		Use:   "export [render_id]",
		Short: "export render metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRender,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [render_id]",
		Short: "export a render's parameter trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	diagramCmd := &cobra.Command{
		Use:   "diagram [file]",
		Short: "wrap a circuitikz fragment into a compilable document",
		Args:  cobra.ExactArgs(1),
		RunE:  diagram,
	}
	diagramCmd.Flags().BoolVar(&compile, "compile", false, "compile to SVG (needs latex and dvisvgm)")
	diagramCmd.Flags().StringVar(&outDir, "out", ".", "output directory for compiled diagrams")

	rootCmd.AddCommand(renderCmd, liveCmd, scenesCmd, presetsCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, diagramCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "canvas width in cells")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "canvas height in cells")
	cmd.Flags().Float64Var(&vin, "vin", config.DefaultVin, "supply voltage")
	cmd.Flags().Float64Var(&r1, "r1", config.DefaultR1, "top resistor, ohms")
	cmd.Flags().Float64Var(&r2, "r2", config.DefaultR2, "bottom resistor, ohms")
	cmd.Flags().Float64Var(&rl, "rl", config.DefaultRL, "load resistor, ohms")
	cmd.Flags().IntVar(&leds, "leds", config.DefaultLEDs, "initial LED count")
	cmd.Flags().Float64Var(&vmin, "vmin", config.DefaultVmin, "brown-out threshold, volts")
}

// buildConfig resolves preset, config file and flags, in rising precedence.
func buildConfig(cmd *cobra.Command, sceneName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Scene = sceneName

	if preset != "" {
		p := config.GetPreset(sceneName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(sceneName))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Scene = sceneName
	}

	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("vin") {
		cfg.Params.Vin = vin
	}
	if cmd.Flags().Changed("r1") {
		cfg.Params.R1 = r1
	}
	if cmd.Flags().Changed("r2") {
		cfg.Params.R2 = r2
	}
	if cmd.Flags().Changed("rl") {
		cfg.Params.RL = rl
	}
	if cmd.Flags().Changed("leds") {
		cfg.Params.LEDs = leds
	}
	if cmd.Flags().Changed("vmin") {
		cfg.Params.Vmin = vmin
	}
	return cfg, nil
}

func renderScene(cmd *cobra.Command, args []string) error {
	sceneName := args[0]

	cfg, err := buildConfig(cmd, sceneName)
	if err != nil {
		return err
	}

	// config out_dir applies unless --data was given explicitly
	if cfg.OutDir != "" && !cmd.Root().PersistentFlags().Changed("data") {
		dataDir = cfg.OutDir
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := scenes.NewRegistry()
	prod, err := registry.Get(sceneName, cfg)
	if err != nil {
		return err
	}

	trace := export.NewTrace(prod.Store)
	sinks := export.MultiSink{trace, prod.ObserveSink()}

	var gifSink *export.GIFSink
	if gifPath != "" {
		gifSink = export.NewGIFSink(cfg.FPS)
		sinks = append(sinks, gifSink)
	}
	var svgSink *export.SVGSink
	if svgDir != "" {
		if err := os.MkdirAll(svgDir, 0755); err != nil {
			return err
		}
		svgSink = export.NewSVGSink(svgDir)
		sinks = append(sinks, svgSink)
	}

	fmt.Printf("rendering %s (%.1fs at %d fps)...\n", sceneName, prod.Director.Duration(), cfg.FPS)
	start := time.Now()

	if err := prod.Director.Run(context.Background(), sinks); err != nil {
		return err
	}
	elapsed := time.Since(start)

	renderID, err := st.Save(sceneName, cfg.FPS, prod.Director.Duration(), metrics.Collect(prod.Metrics), trace)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("render id: %s\n", renderID)
	fmt.Printf("frames: %d\n", len(trace.Rows))
	if gifSink != nil {
		if err := gifSink.Save(gifPath); err != nil {
			return err
		}
		fmt.Printf("gif: %s (%d frames)\n", gifPath, gifSink.Frames())
	}
	if svgSink != nil {
		fmt.Printf("svg: %s (%d frames)\n", svgDir, svgSink.Frames())
	}
	fmt.Println("\nmetrics:")
	for name, val := range metrics.Collect(prod.Metrics) {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	sceneName := args[0]

	cfg, err := buildConfig(cmd, sceneName)
	if err != nil {
		return err
	}

	registry := scenes.NewRegistry()
	prod, err := registry.Get(sceneName, cfg)
	if err != nil {
		return err
	}
	return tui.Run(prod, registry, cfg)
}

func listRenders(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no renders found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tDURATION\tFPS\tFRAMES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%d\t%d\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.FPS,
			run.Frames,
		)
	}
	return w.Flush()
}

func plotRender(cmd *cobra.Command, args []string) error {
	renderID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(renderID)
	if err != nil {
		return err
	}
	names, _, rows, err := st.LoadTrace(renderID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("render: %s\n", meta.ID)
	fmt.Printf("scene: %s\n", meta.Scene)
	fmt.Printf("samples: %d\n\n", len(rows))

	for i, name := range names {
		data := make([]float64, len(rows))
		for j := range rows {
			data[j] = rows[j][i]
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(name+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportRender(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSON(os.Stdout, meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	renderID := args[0]

	st := store.New(dataDir)
	names, times, rows, err := st.LoadTrace(renderID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(append([]string{"time"}, names...)); err != nil {
		return err
	}
	for i := range rows {
		rec := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range rows[i] {
			rec = append(rec, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func diagram(cmd *cobra.Command, args []string) error {
	d, err := tikz.FromFile(args[0])
	if err != nil {
		return err
	}
	if !compile {
		fmt.Print(d.Document())
		return nil
	}
	out, err := d.Compile(context.Background(), outDir)
	if err != nil {
		return err
	}
	fmt.Printf("compiled: %s\n", out)
	return nil
}
