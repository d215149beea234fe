package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/carbonbox/internal/analysis"
	"github.com/san-kum/carbonbox/internal/batch"
	"github.com/san-kum/carbonbox/internal/config"
	"github.com/san-kum/carbonbox/internal/forcing"
	"github.com/san-kum/carbonbox/internal/scenario"
	"github.com/san-kum/carbonbox/internal/storage"
	"github.com/san-kum/carbonbox/internal/viz"
)

var (
	dataDir string
	verbose bool
	log     = logrus.New()

	// Scenario settings
	region     string
	years      int
	spinUp     int
	dataset    string
	co2        float64
	windSummer float64
	windWinter float64
	configFile string
	preset     string
	noSave     bool

	// Conditions for one-off calculations
	tempC float64
	sal   float64
	wind  float64
	alk   float64
	dic   float64

	// Output
	column   string
	imgPath  string
	outPath  string
	tsv      bool
	decimals int

	// Browser
	theme string

	// Sweep
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "carbonbox",
		Short:        "forcing and initial conditions for a mixed-layer carbon box model",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(os.Stderr)
			log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".carbonbox", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	forcingCmd := &cobra.Command{
		Use:   "forcing [source]",
		Short: "build a scenario from a forcing source and save it",
		Long:  "Sources: " + strings.Join(forcing.NewRegistry().ListSources(), ", "),
		Args:  cobra.MaximumNArgs(1),
		RunE:  runForcing,
	}
	addScenarioFlags(forcingCmd)
	forcingCmd.Flags().BoolVar(&noSave, "no-save", false, "print the scenario without saving it")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "", "plot only this column")
	plotCmd.Flags().StringVar(&imgPath, "out", "", "also save a figure (.png, .svg, .pdf)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "seasonal cycle and frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	exportCSVCmd.Flags().BoolVar(&tsv, "tsv", false, "tab separated")
	exportCSVCmd.Flags().IntVar(&decimals, "decimals", 6, "decimal places")

	constantsCmd := &cobra.Command{
		Use:   "constants",
		Short: "print seawater constants at one condition",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(viz.RenderConstants(tempC, sal, wind))
			return nil
		},
	}
	constantsCmd.Flags().Float64Var(&tempC, "temp", config.DefaultTemperature, "temperature (°C)")
	constantsCmd.Flags().Float64Var(&sal, "sal", config.DefaultSalinity, "salinity (psu)")
	constantsCmd.Flags().Float64Var(&wind, "wind", config.DefaultWindSummer, "wind speed (m/s)")

	carbonateCmd := &cobra.Command{
		Use:   "carbonate",
		Short: "solve the carbonate system from alkalinity and DIC",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := scenario.CarbonateState(dic, alk, tempC, sal)
			if err != nil {
				return err
			}
			fmt.Println(viz.RenderInitial(res))
			return nil
		},
	}
	carbonateCmd.Flags().Float64Var(&alk, "alk", 2400, "total alkalinity (µmol/kg)")
	carbonateCmd.Flags().Float64Var(&dic, "dic", 2200, "dissolved inorganic carbon (µmol/kg)")
	carbonateCmd.Flags().Float64Var(&tempC, "temp", config.DefaultTemperature, "temperature (°C)")
	carbonateCmd.Flags().Float64Var(&sal, "sal", config.DefaultSalinity, "salinity (psu)")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "carbonbox.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [source]",
		Short: "list available presets for a forcing source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for source: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	batchCmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "build and save every scenario in a batch file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "vary one parameter and report the initial carbonate system",
		RunE:  runSweep,
	}
	addScenarioFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "atmospheric_co2", "parameter: "+strings.Join(batch.SweepParams(), ", "))
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 280, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 560, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 8, "number of values")

	datasetCmd := &cobra.Command{
		Use:   "dataset [path]",
		Short: "write an idealized regional dataset (.nc, .csv or .xlsx) usable as historical forcing",
		Args:  cobra.ExactArgs(1),
		RunE:  writeDataset,
	}

	browseCmd := &cobra.Command{
		Use:   "browse [run_id]",
		Short: "browse a run day by day",
		Args:  cobra.ExactArgs(1),
		RunE:  browseRun,
	}
	browseCmd.Flags().StringVar(&theme, "theme", viz.ThemeOcean.Name, "color theme: "+strings.Join(viz.ThemeNames(), ", "))

	rootCmd.AddCommand(forcingCmd, listCmd, plotCmd, analyzeCmd, exportJSONCmd, exportCSVCmd,
		constantsCmd, carbonateCmd, initCmd, presetsCmd, batchCmd, sweepCmd, datasetCmd, browseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&region, "region", config.DefaultRegion, "alkalinity region: "+strings.Join(scenario.Regions(), ", "))
	cmd.Flags().IntVar(&years, "years", config.DefaultYears, "simulation length (years)")
	cmd.Flags().IntVar(&spinUp, "spinup", config.DefaultSpinUpYears, "spin-up years dropped from the output")
	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset file for the historical source")
	cmd.Flags().Float64Var(&co2, "co2", config.DefaultAtmosphericCO2, "atmospheric CO2 (ppm)")
	cmd.Flags().Float64Var(&windSummer, "wind-summer", config.DefaultWindSummer, "summer wind speed (m/s)")
	cmd.Flags().Float64Var(&windWinter, "wind-winter", config.DefaultWindWinter, "winter wind speed (m/s)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (.yaml or .toml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration (<source>/<name>)")
}

// scenarioConfig layers preset, config file and explicitly set flags.
func scenarioConfig(cmd *cobra.Command, source string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		src, name, ok := strings.Cut(preset, "/")
		if !ok {
			src, name = cfg.Source, preset
		}
		p := config.GetPreset(src, name)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(src))
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

	if source != "" {
		cfg.Source = source
	}
	if cmd.Flags().Changed("region") {
		cfg.Region = region
	}
	if cmd.Flags().Changed("years") {
		cfg.Years = years
	}
	if cmd.Flags().Changed("spinup") {
		cfg.SpinUpYears = spinUp
	}
	if cmd.Flags().Changed("dataset") {
		cfg.Dataset = dataset
		if source == "" {
			cfg.Source = "historical"
		}
	}
	if cmd.Flags().Changed("co2") {
		cfg.Atmosphere.CO2 = co2
	}
	if cmd.Flags().Changed("wind-summer") {
		cfg.Wind.Summer = windSummer
	}
	if cmd.Flags().Changed("wind-winter") {
		cfg.Wind.Winter = windWinter
	}

	return cfg, cfg.Validate()
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runForcing(cmd *cobra.Command, args []string) error {
	source := ""
	if len(args) > 0 {
		source = args[0]
	}
	cfg, err := scenarioConfig(cmd, source)
	if err != nil {
		return err
	}

	src, err := forcing.NewRegistry().GetSource(cfg.Source, cfg.SourceParams())
	if err != nil {
		return err
	}
	if h, ok := src.(*forcing.Historical); ok {
		h.Log = log
	}

	ctx, cancel := signalContext()
	defer cancel()

	sc, err := (&scenario.Builder{Log: log}).Build(ctx, cfg, src)
	if err != nil {
		return err
	}

	fmt.Println(viz.RenderInitial(sc.Initial))
	fmt.Printf("days: %d  tracers (DIC, ALK, d13C·DIC, D14C·DIC): %.2f\n", sc.Len(), sc.InitialState)

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sc, analysis.Metrics(sc.Columns()))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"run": runID, "dir": dataDir}).Info("scenario saved")
	fmt.Printf("run: %s\n", runID)
	return nil
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
	fmt.Fprintln(w, "ID\tSOURCE\tREGION\tTIME\tYEARS\tSPINUP\tCO2\tDIC\tPH")

	for _, run := range runs {
		dicVal, phVal := 0.0, 0.0
		if run.Initial != nil {
			dicVal, phVal = run.Initial.DIC, run.Initial.PH
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%.0f\t%.2f\t%.4f\n",
			run.ID,
			run.Source,
			run.Region,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Years,
			run.SpinUpYears,
			run.Atmosphere.CO2,
			dicVal,
			phVal,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, *storage.Series, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return nil, nil, err
	}
	if series.Len() == 0 {
		return nil, nil, fmt.Errorf("run %s has no data", runID)
	}
	return meta, series, nil
}

// plotColumns are the series worth plotting; time is the x axis.
func plotColumns(series *storage.Series) ([]string, error) {
	if column != "" {
		if _, err := series.Column(column); err != nil {
			return nil, err
		}
		return []string{column}, nil
	}
	cols := make([]string, 0, len(series.Header))
	for _, name := range series.Header {
		if name != "time" {
			cols = append(cols, name)
		}
	}
	return cols, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, series, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("source: %s (%s)\n", meta.Source, meta.Region)
	fmt.Printf("days: %d\n\n", series.Len())

	cols, err := plotColumns(series)
	if err != nil {
		return err
	}

	lines := make([]viz.Line, 0, len(cols))
	for _, name := range cols {
		data := series.Columns[name]
		fmt.Println(viz.PlotSeries(data, name, 80, 10))
		fmt.Println()
		lines = append(lines, viz.Line{Name: name, Values: data})
	}

	if imgPath != "" {
		if err := viz.SavePlot(imgPath, meta.ID, strings.Join(cols, ", "), lines); err != nil {
			return err
		}
		log.WithField("path", imgPath).Info("figure saved")
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, series, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s  (%d days)\n\n", meta.ID, series.Len())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tMEAN\tSTD\tMIN\tMAX\tMAX DAY\tMIN DAY\tPERIOD\tMAX STEP")
	for _, name := range series.Header {
		if name == "time" {
			continue
		}
		data := series.Columns[name]
		s, err := analysis.Summarize(data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		maxDay, minDay := "-", "-"
		if ext := analysis.AnnualExtrema(data, forcing.DaysPerYear); len(ext) > 0 {
			maxDay = fmt.Sprintf("%d", ext[0].MaxDay+1)
			minDay = fmt.Sprintf("%d", ext[0].MinDay+1)
		}
		fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%.4g\t%.4g\t%s\t%s\t%.1f\t%.3g\n",
			name, s.Mean, s.StdDev, s.Min, s.Max, maxDay, minDay,
			analysis.DominantPeriod(data), analysis.MaxStep(data))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	temp := series.Columns["temperature"]
	ps := analysis.PowerSpectrum(temp)
	if len(ps) > 0 {
		fmt.Println()
		fmt.Println(viz.PlotSeries(ps[:min(len(ps), 40)], "temperature power spectrum (low frequencies)", 80, 12))
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, series, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if outPath != "" {
		return storage.ExportJSON(outPath, meta, series)
	}
	return storage.WriteJSON(os.Stdout, meta, series)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, series, err := loadRun(args[0])
	if err != nil {
		return err
	}
	delim := ','
	if tsv {
		delim = '\t'
	}
	if outPath != "" {
		return storage.ExportTable(outPath, series, delim, decimals)
	}
	return storage.WriteTable(os.Stdout, series, delim, decimals)
}

func runBatch(cmd *cobra.Command, args []string) error {
	b, err := batch.Load(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	r := &batch.Runner{Registry: forcing.NewRegistry(), Store: st, Log: log}
	results, err := r.Run(ctx, b, config.DefaultConfig())
	for _, res := range results {
		fmt.Printf("step %d: %s  DIC %.2f  pH %.4f\n", res.Step, res.RunID, res.Scenario.Initial.DIC, res.Scenario.Initial.PH)
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := scenarioConfig(cmd, "")
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	r := &batch.Runner{Registry: forcing.NewRegistry(), Log: log}
	results, err := r.RunSweep(ctx, &batch.Sweep{
		Param:    sweepParam,
		Min:      sweepMin,
		Max:      sweepMax,
		NumSteps: sweepSteps,
	}, cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tDIC\tPH\tΩ ARAGONITE\tMEAN PISTON\n", strings.ToUpper(sweepParam))
	for _, res := range results {
		fmt.Fprintf(w, "%.2f\t%.2f\t%.4f\t%.3f\t%.5f\n", res.Value, res.DIC, res.PH, res.OmegaAragonite, res.MeanPiston)
	}
	return w.Flush()
}

// writeDataset writes one seasonal year per region under the column names
// the historical source reads.
func writeDataset(cmd *cobra.Command, args []string) error {
	year := forcing.NewSeasonal().Year()
	cols := make(map[string][]float64)
	for _, r := range scenario.Regions() {
		cols[r+"temp"] = year.Temperature
		cols[r+"salt"] = year.Salinity
	}
	if err := os.MkdirAll(filepath.Dir(args[0]), 0755); err != nil {
		return err
	}
	if err := forcing.WriteDataset(args[0], cols); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d days, regions %v)\n", args[0], forcing.DaysPerYear, scenario.Regions())
	return nil
}

func browseRun(cmd *cobra.Command, args []string) error {
	meta, series, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if !slices.Contains(viz.ThemeNames(), theme) {
		return fmt.Errorf("unknown theme: %s (available: %v)", theme, viz.ThemeNames())
	}
	title := fmt.Sprintf("%s  %s/%s", meta.ID, meta.Source, meta.Region)
	b := viz.NewBrowser(title, series.Header, series.Columns)
	b.SetTheme(theme)
	return b.Run()
}
