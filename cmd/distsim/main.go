package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/distsim/internal/column"
	"github.com/san-kum/distsim/internal/config"
	"github.com/san-kum/distsim/internal/report"
	"github.com/san-kum/distsim/internal/storage"
	"github.com/san-kum/distsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	stages     int
	feedStage  int
	reflux     float64
	condenser  string
	reboiler   string
	seed       int64
	workers    int
	outFile    string
	guess      float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "distsim",
		Short: "steady-state distillation column lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".distsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "optimize reflux and simulate the column",
		RunE:  runColumn,
	}
	addColumnFlags(runCmd)
	runCmd.Flags().IntVar(&workers, "workers", 1, "parallel stage workers")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	tableCmd := &cobra.Command{
		Use:   "table [run_id]",
		Short: "print the stage table of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  printTable,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot temperature and pressure curves in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render temperature/pressure curves to an image file",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().StringVar(&outFile, "out", "stages.png", "output image path")

	vleCmd := &cobra.Command{
		Use:   "vle",
		Short: "print the equilibrium table for the configured components",
		RunE:  printVLE,
	}
	addColumnFlags(vleCmd)

	vlleCmd := &cobra.Command{
		Use:   "vlle",
		Short: "print the pairwise equilibrium table",
		RunE:  printVLLE,
	}
	addColumnFlags(vlleCmd)

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "run the bounded reflux minimization alone",
		RunE:  optimizeReflux,
	}
	addColumnFlags(optimizeCmd)
	optimizeCmd.Flags().Float64Var(&guess, "guess", config.DefaultRefluxRatio, "initial reflux guess")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the stage table of a run as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list column presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("%s: %d components, %d stages\n", name, len(cfg.Components), cfg.Stages)
			}
		},
	}

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "browse the stage table interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  viewRun,
	}

	rootCmd.AddCommand(runCmd, listCmd, tableCmd, plotCmd, renderCmd, vleCmd, vlleCmd,
		optimizeCmd, exportCSVCmd, exportJSONCmd, presetsCmd, viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addColumnFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named column preset")
	cmd.Flags().IntVar(&stages, "stages", config.DefaultStages, "number of stages")
	cmd.Flags().IntVar(&feedStage, "feed-stage", config.DefaultFeedStage, "feed stage index")
	cmd.Flags().Float64Var(&reflux, "reflux", config.DefaultRefluxRatio, "reflux ratio seed")
	cmd.Flags().StringVar(&condenser, "condenser", config.DefaultCondenser, "condenser type")
	cmd.Flags().StringVar(&reboiler, "reboiler", config.DefaultReboiler, "reboiler type")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed for table sampling")
}

// loadConfig resolves preset, config file and flags, in increasing
// precedence. CLI flags override file values only when changed.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		pc := config.GetPreset(preset)
		if pc == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		// Copy so flag overrides don't mutate the shared preset.
		c := *pc
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("stages") {
		cfg.Stages = stages
	}
	if cmd.Flags().Changed("feed-stage") {
		cfg.FeedStage = feedStage
	}
	if cmd.Flags().Changed("reflux") {
		cfg.RefluxRatio = reflux
	}
	if cmd.Flags().Changed("condenser") {
		cfg.Condenser = condenser
	}
	if cmd.Flags().Changed("reboiler") {
		cfg.Reboiler = reboiler
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	return cfg, nil
}

func runColumn(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	col, err := cfg.BuildColumn()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("simulating %d-stage column with %d components...\n", col.NumStages, len(col.Components))
	start := time.Now()

	var optimized float64
	if workers > 1 {
		optimized, err = col.SimulateParallel(context.Background(), workers)
	} else {
		optimized, err = col.Simulate(context.Background())
	}
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	rows := report.Build(col)

	runID, err := st.Save(col, cfg.Seed, rows)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("optimized reflux ratio: %.6f\n", optimized)
	fmt.Printf("total duty: %.4f\n", col.TotalDuty)
	fmt.Printf("stages: %d\n\n", len(col.Stages))

	return report.WriteTab(os.Stdout, rows)
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
	fmt.Fprintln(w, "ID\tTIME\tSTAGES\tREFLUX\tDUTY\tCONDENSER\tREBOILER")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4f\t%.4f\t%s\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Stages,
			run.RefluxRatio,
			run.TotalDuty,
			run.Condenser,
			run.Reboiler,
		)
	}
	return w.Flush()
}

func printTable(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	rows, err := st.LoadRows(args[0])
	if err != nil {
		return err
	}
	return report.WriteTab(os.Stdout, rows)
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	rows, err := st.LoadRows(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("stages: %d\n\n", meta.Stages)
	fmt.Print(report.AsciiPlots(rows))
	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	rows, err := st.LoadRows(args[0])
	if err != nil {
		return err
	}

	if err := report.RenderPNG(rows, outFile); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func printVLE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	col, err := cfg.BuildColumn()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "TEMP (K)")
	for _, comp := range col.Components {
		fmt.Fprintf(w, "\tP_%s (kPa)\tx_%s", comp.Name, comp.Name)
	}
	fmt.Fprintln(w)

	for i, T := range col.VLE.Temperatures {
		fmt.Fprintf(w, "%.1f", T)
		for _, comp := range col.Components {
			fmt.Fprintf(w, "\t%.4f\t%.4f", col.VLE.Pressures[i][comp.Name], col.VLE.MoleFractions[i][comp.Name])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func printVLLE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	col, err := cfg.BuildColumn()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for pair, points := range col.VLLE {
		fmt.Fprintf(w, "%s\n", pair)
		fmt.Fprintln(w, "  TEMP (K)\tP (kPa)")
		for _, pt := range points {
			fmt.Fprintf(w, "  %.1f\t%.4f\n", pt.Temperature, pt.Pressure)
		}
	}
	return w.Flush()
}

func optimizeReflux(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	col, err := cfg.BuildColumn()
	if err != nil {
		return err
	}

	optimized := col.OptimizedReflux(guess)
	fmt.Printf("bounds: [%.1f, %.1f]\n", column.RefluxLower, column.RefluxUpper)
	fmt.Printf("optimized reflux ratio: %.6f\n", optimized)
	fmt.Printf("cost at optimum: %.4f\n", col.CostFunction(optimized))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	rows, err := st.LoadRows(args[0])
	if err != nil {
		return err
	}
	return report.WriteCSV(os.Stdout, rows)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	rows, err := st.LoadRows(args[0])
	if err != nil {
		return err
	}

	return report.ExportJSON(os.Stdout, report.ExportData{
		ID:          meta.ID,
		Stages:      meta.Stages,
		RefluxRatio: meta.RefluxRatio,
		TotalDuty:   meta.TotalDuty,
		Volatility:  meta.Volatility,
		Rows:        rows,
	})
}

func viewRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	rows, err := st.LoadRows(args[0])
	if err != nil {
		return err
	}
	return viz.Browse(*meta, rows)
}
