package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lapdoer/lapdoer/internal/config"
	"github.com/lapdoer/lapdoer/internal/export"
	"github.com/lapdoer/lapdoer/internal/garage"
	"github.com/lapdoer/lapdoer/internal/storage"
	"github.com/lapdoer/lapdoer/internal/sweep"
	"github.com/lapdoer/lapdoer/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	curvature  float64
	radius     float64
	longForce  float64
	tolerance  float64
	maxIter    int
	speedCap   float64
	// Sweep range
	minRadius float64
	maxRadius float64
	steps     int
	saveRun   bool
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// main registers the lapdoer commands and flags and executes the root
// command; it exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "lapdoer",
		Short: "steady-state cornering limit solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lapdoer", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "car config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a named car preset")
	rootCmd.PersistentFlags().Float64Var(&longForce, "fx", 0.0, "longitudinal force demand (N)")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "solver speed tolerance (m/s)")
	rootCmd.PersistentFlags().IntVar(&maxIter, "max-iter", config.DefaultIterations, "solver iteration cap")
	rootCmd.PersistentFlags().Float64Var(&speedCap, "speed-cap", config.DefaultSpeedCap, "upper speed bound (m/s)")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve the max speed through one corner",
		RunE:  runSolve,
	}
	solveCmd.Flags().Float64Var(&curvature, "curvature", 0.02, "corner curvature (1/m)")
	solveCmd.Flags().Float64Var(&radius, "radius", 0, "corner radius (m), overrides --curvature")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep max speed across a range of corner radii",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&minRadius, "min-radius", 10.0, "tightest radius (m)")
	sweepCmd.Flags().Float64Var(&maxRadius, "max-radius", 200.0, "widest radius (m)")
	sweepCmd.Flags().IntVar(&steps, "steps", 40, "number of radii")
	sweepCmd.Flags().BoolVar(&saveRun, "save", false, "save the sweep to the data directory")

	topspeedCmd := &cobra.Command{
		Use:   "topspeed",
		Short: "drag-limited top speed on a straight",
		RunE:  runTopSpeed,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available car presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sweeps",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export sweep metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export sweep points as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id] [file]",
		Short: "render a saved sweep to an SVG speed curve",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive corner explorer",
		RunE:  runExplore,
	}

	rootCmd.AddCommand(solveCmd, sweepCmd, topspeedCmd, presetsCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportSVGCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves preset, config file, and flags in that order.
// CLI flags win over the config file, which wins over the preset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("tolerance") {
		cfg.Solver.Tolerance = tolerance
	}
	if cmd.Flags().Changed("max-iter") {
		cfg.Solver.MaxIterations = maxIter
	}
	if cmd.Flags().Changed("speed-cap") {
		cfg.Solver.SpeedCap = speedCap
	}
	if cmd.Flags().Changed("fx") {
		cfg.Solver.LongitudinalForce = longForce
	}

	return cfg, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	c, err := garage.Build(cfg)
	if err != nil {
		return err
	}

	k := curvature
	if cmd.Flags().Changed("radius") {
		if radius == 0 {
			return fmt.Errorf("radius must be non-zero")
		}
		k = 1 / radius
	}

	sol, err := c.MaxSpeedOverCurvature(k, garage.SolverOptions(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("car: %s\n", cfg.Car)
	if sol.Curvature != 0 {
		fmt.Printf("corner: curvature %.4f 1/m (radius %.1f m)\n", sol.Curvature, 1/sol.Curvature)
	} else {
		fmt.Println("corner: straight line")
	}

	if sol.Unbounded {
		fmt.Println(warnStyle.Render(fmt.Sprintf("max speed: unbounded below the %.0f m/s cap", cfg.Solver.SpeedCap)))
		return nil
	}

	fmt.Println(okStyle.Render(fmt.Sprintf("max speed: %.2f m/s (%.1f km/h)", sol.Speed, sol.Speed*3.6)))
	fmt.Printf("lateral accel: %.2f m/s² (%.2f g)\n", sol.LateralAccel, sol.LateralAccel/9.81)
	fmt.Printf("axle loads: front %.0f N, rear %.0f N\n", sol.FrontLoad, sol.RearLoad)
	fmt.Printf("residual: %.3e N in %d iterations\n", sol.Residual, sol.Iterations)

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	c, err := garage.Build(cfg)
	if err != nil {
		return err
	}

	opts := garage.SolverOptions(cfg)
	points := sweep.Radii(c, minRadius, maxRadius, steps, opts)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RADIUS\tCURVATURE\tSPEED\tLAT ACCEL\tFRONT\tREAR")
	for _, p := range points {
		if !p.Converged {
			fmt.Fprintf(w, "%.1f\t%.5f\t-\t-\t-\t-\n", p.Radius, p.Curvature)
			continue
		}
		fmt.Fprintf(w, "%.1f\t%.5f\t%.2f\t%.2f\t%.0f\t%.0f\n",
			p.Radius, p.Curvature, p.Speed, p.LateralAccel, p.FrontLoad, p.RearLoad)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	speeds := sweep.Speeds(points)
	if len(speeds) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(speeds,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("max speed (m/s) vs radius"),
		))
	}

	fmt.Printf("\npeak lateral accel: %.2f m/s²\n", sweep.MaxLateralAccel(points))

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Car, opts, points)
		if err != nil {
			return err
		}
		fmt.Printf("saved run: %s\n", runID)
	}

	return nil
}

func runTopSpeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	c, err := garage.Build(cfg)
	if err != nil {
		return err
	}

	v, iters, err := c.TopSpeed(garage.SolverOptions(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("car: %s\n", cfg.Car)
	fmt.Printf("top speed: %.2f m/s (%.1f km/h) in %d iterations\n", v, v*3.6, iters)
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	c, err := garage.Build(cfg)
	if err != nil {
		return err
	}

	return tui.Run(c, cfg.Car, garage.SolverOptions(cfg))
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
	fmt.Fprintln(w, "ID\tCAR\tTIME\tPOINTS\tMAX SPEED\tMAX LAT ACCEL")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%.2f\n",
			run.ID,
			run.Car,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Points,
			run.MaxSpeed,
			run.MaxLateralAccel,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	points, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	speeds := sweep.Speeds(points)
	if len(speeds) < 2 {
		return fmt.Errorf("not enough converged points to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("car: %s\n", meta.Car)
	fmt.Printf("points: %d\n\n", len(points))

	fmt.Println(asciigraph.Plot(speeds,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("max speed (m/s)"),
	))

	accels := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Converged {
			accels = append(accels, p.LateralAccel)
		}
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(accels,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("lateral accel (m/s²)"),
	))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	points, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"curvature", "radius", "speed", "lateral_accel", "front_load", "rear_load", "converged"}); err != nil {
		return err
	}
	for _, p := range points {
		rec := []string{
			strconv.FormatFloat(p.Curvature, 'g', -1, 64),
			strconv.FormatFloat(p.Radius, 'g', -1, 64),
			strconv.FormatFloat(p.Speed, 'g', -1, 64),
			strconv.FormatFloat(p.LateralAccel, 'g', -1, 64),
			strconv.FormatFloat(p.FrontLoad, 'g', -1, 64),
			strconv.FormatFloat(p.RearLoad, 'g', -1, 64),
			strconv.FormatBool(p.Converged),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]
	outPath := args[1]

	st := storage.New(dataDir)
	points, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	svg := export.SpeedCurveSVG(points, 800, 400, "#00ccff")
	if svg == "" {
		return fmt.Errorf("not enough converged points to render")
	}

	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}
