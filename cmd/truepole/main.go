package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vparth/truepole/internal/astrotime"
	"github.com/vparth/truepole/internal/config"
	"github.com/vparth/truepole/internal/frames"
	"github.com/vparth/truepole/internal/nutation"
	"github.com/vparth/truepole/internal/storage"
	"github.com/vparth/truepole/internal/viz"
)

var (
	configFile string
	method     string
	eopFile    string
	correctEOP bool
	dataDir    string

	jdFlag   float64
	dateFlag string

	fromDate string
	toDate   string
	stepDays float64
	csvOut   string
	jsonOut  string
	saveRun  bool

	plotAngle  string
	plotWidth  int
	plotHeight int

	reverse bool

	liveStep float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "truepole",
		Short: "Earth nutation and mean/true frame reduction",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&method, "method", "", "reduction method (iau1976..iau2009)")
	rootCmd.PersistentFlags().StringVar(&eopFile, "eop", "", "Earth orientation table file")
	rootCmd.PersistentFlags().BoolVar(&correctEOP, "correct-eop", false, "apply measured celestial pole offsets")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory for saved runs")

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "nutation angles at one instant",
		RunE:  runCalc,
	}
	calcCmd.Flags().Float64Var(&jdFlag, "jd", 0, "Julian Date (TT)")
	calcCmd.Flags().StringVar(&dateFlag, "date", "", "calendar date (YYYY-MM-DD, 0h TT)")

	seriesCmd := &cobra.Command{
		Use:   "series",
		Short: "nutation angles over a date range",
		RunE:  runSeries,
	}
	seriesCmd.Flags().StringVar(&fromDate, "from", "", "start date (YYYY-MM-DD)")
	seriesCmd.Flags().StringVar(&toDate, "to", "", "end date (YYYY-MM-DD)")
	seriesCmd.Flags().Float64Var(&stepDays, "step", 0, "step in days")
	seriesCmd.Flags().StringVar(&csvOut, "csv", "", "write series to csv file")
	seriesCmd.Flags().StringVar(&jsonOut, "json", "", "write series to json file")
	seriesCmd.Flags().BoolVar(&saveRun, "save", false, "save series under the data directory")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "terminal plot of an angle over a date range",
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&fromDate, "from", "", "start date (YYYY-MM-DD)")
	plotCmd.Flags().StringVar(&toDate, "to", "", "end date (YYYY-MM-DD)")
	plotCmd.Flags().Float64Var(&stepDays, "step", 0, "step in days")
	plotCmd.Flags().StringVar(&plotAngle, "angle", "dpsi", "angle to plot: dpsi or deps")
	plotCmd.Flags().IntVar(&plotWidth, "width", 0, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 0, "plot height")

	matrixCmd := &cobra.Command{
		Use:   "matrix [x y z [vx vy vz]]",
		Short: "print the nutation matrix or transform a vector",
		Args:  cobra.RangeArgs(0, 6),
		RunE:  runMatrix,
	}
	matrixCmd.Flags().Float64Var(&jdFlag, "jd", 0, "Julian Date (TT)")
	matrixCmd.Flags().StringVar(&dateFlag, "date", "", "calendar date (YYYY-MM-DD, 0h TT)")
	matrixCmd.Flags().BoolVar(&reverse, "reverse", false, "transform true-to-mean instead of mean-to-true")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive view stepping through time",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&jdFlag, "jd", 0, "starting Julian Date (TT)")
	liveCmd.Flags().StringVar(&dateFlag, "date", "", "starting date (YYYY-MM-DD)")
	liveCmd.Flags().Float64Var(&liveStep, "step", 1.0, "days advanced per tick")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved series runs",
		RunE:  runRuns,
	}

	rootCmd.AddCommand(calcCmd, seriesCmd, plotCmd, matrixCmd, liveCmd, runsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig merges the yaml file (if any) with command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
	}
	if method != "" {
		cfg.Method = method
	}
	if eopFile != "" {
		cfg.EOPFile = eopFile
		cfg.CorrectEOP = true
	}
	if correctEOP {
		cfg.CorrectEOP = true
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

// resolveJD picks the instant from --jd or --date, defaulting to now.
func resolveJD() (float64, error) {
	if jdFlag != 0 {
		return jdFlag, nil
	}
	if dateFlag != "" {
		return parseDate(dateFlag)
	}
	return astrotime.JulianDate(time.Now()), nil
}

func parseDate(s string) (float64, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return astrotime.CalendarToJD(t.Year(), int(t.Month()), t.Day(), 0), nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rc, err := cfg.Runtime()
	if err != nil {
		return err
	}
	jd, err := resolveJD()
	if err != nil {
		return err
	}

	T := astrotime.CenturiesJ2000(jd)
	a, err := nutation.Calc(T, rc)
	if err != nil {
		return err
	}
	dpsi, deps := a.Arcsec()
	meanEps := frames.MeanObliquity(T, rc.Method)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "method\t%s\n", rc.Method)
	fmt.Fprintf(w, "JD (TT)\t%.6f\n", jd)
	fmt.Fprintf(w, "T (centuries)\t%.10f\n", T)
	fmt.Fprintf(w, "Δψ\t%+.6f\"\t%+.12e rad\n", dpsi, a.Longitude)
	fmt.Fprintf(w, "Δε\t%+.6f\"\t%+.12e rad\n", deps, a.Obliquity)
	fmt.Fprintf(w, "mean obliquity\t%.9f rad\n", meanEps)
	fmt.Fprintf(w, "true obliquity\t%.9f rad\n", meanEps+a.Obliquity)
	return w.Flush()
}

func computeSeries(rc nutation.Config) ([]storage.Point, error) {
	if fromDate == "" || toDate == "" {
		return nil, fmt.Errorf("series requires --from and --to")
	}
	from, err := parseDate(fromDate)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(toDate)
	if err != nil {
		return nil, err
	}
	if to < from {
		return nil, fmt.Errorf("--to precedes --from")
	}

	step := stepDays
	if step <= 0 {
		step = config.DefaultStepDays
	}

	var points []storage.Point
	for jd := from; jd <= to; jd += step {
		a, err := nutation.Calc(astrotime.CenturiesJ2000(jd), rc)
		if err != nil {
			return nil, err
		}
		dpsi, deps := a.Arcsec()
		points = append(points, storage.Point{JD: jd, DPsi: dpsi, DEps: deps})
	}
	return points, nil
}

func runSeries(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rc, err := cfg.Runtime()
	if err != nil {
		return err
	}
	points, err := computeSeries(rc)
	if err != nil {
		return err
	}

	if csvOut != "" {
		if err := writeCSV(csvOut, points); err != nil {
			return err
		}
	}
	if jsonOut != "" {
		if err := writeJSON(jsonOut, points); err != nil {
			return err
		}
	}
	if saveRun {
		store := storage.New(cfg.DataDir)
		if err := store.Init(); err != nil {
			return err
		}
		meta := storage.RunMetadata{
			Method:     cfg.Method,
			FromJD:     points[0].JD,
			ToJD:       points[len(points)-1].JD,
			StepDays:   stepDays,
			CorrectEOP: cfg.CorrectEOP,
		}
		id, err := store.Save(meta, points)
		if err != nil {
			return err
		}
		fmt.Println("saved run", id)
	}
	if csvOut != "" || jsonOut != "" {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "JD (TT)\tΔψ [\"]\tΔε [\"]")
	for _, p := range points {
		fmt.Fprintf(w, "%.4f\t%+.6f\t%+.6f\n", p.JD, p.DPsi, p.DEps)
	}
	return w.Flush()
}

func writeCSV(path string, points []storage.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"jd_tt", "dpsi_arcsec", "deps_arcsec"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.JD, 'f', 6, 64),
			strconv.FormatFloat(p.DPsi, 'f', 9, 64),
			strconv.FormatFloat(p.DEps, 'f', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, points []storage.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	type rec struct {
		JD   float64 `json:"jd_tt"`
		DPsi float64 `json:"dpsi_arcsec"`
		DEps float64 `json:"deps_arcsec"`
	}
	out := make([]rec, len(points))
	for i, p := range points {
		out[i] = rec{p.JD, p.DPsi, p.DEps}
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rc, err := cfg.Runtime()
	if err != nil {
		return err
	}
	points, err := computeSeries(rc)
	if err != nil {
		return err
	}

	values := make([]float64, len(points))
	caption := "Δψ [arcsec]"
	for i, p := range points {
		values[i] = p.DPsi
	}
	if strings.EqualFold(plotAngle, "deps") {
		caption = "Δε [arcsec]"
		for i, p := range points {
			values[i] = p.DEps
		}
	}

	w := plotWidth
	if w <= 0 {
		w = cfg.Series.PlotW
	}
	h := plotHeight
	if h <= 0 {
		h = cfg.Series.PlotH
	}
	fmt.Println(viz.Plot(values, caption, w, h))
	return nil
}

func runMatrix(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rc, err := cfg.Runtime()
	if err != nil {
		return err
	}
	jd, err := resolveJD()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		T := astrotime.CenturiesJ2000(jd)
		a, err := nutation.Calc(T, rc)
		if err != nil {
			return err
		}
		meanEps := frames.MeanObliquity(T, rc.Method)
		m := frames.NutationMatrix(meanEps, meanEps+a.Obliquity, a.Longitude)
		if reverse {
			m = m.Transpose()
		}
		for i := 0; i < 3; i++ {
			fmt.Printf("% .15f % .15f % .15f\n", m[i][0], m[i][1], m[i][2])
		}
		return nil
	}
	if len(args) != 3 && len(args) != 6 {
		return fmt.Errorf("expected 3 or 6 vector components, got %d", len(args))
	}

	vec := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		vec[i] = v
	}

	out, err := frames.Nutate(jd, rc, vec, !reverse)
	if err != nil {
		return err
	}
	for _, v := range out {
		fmt.Printf("% .15f ", v)
	}
	fmt.Println()
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rc, err := cfg.Runtime()
	if err != nil {
		return err
	}
	jd, err := resolveJD()
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(rc, jd, liveStep), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := storage.New(cfg.DataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMETHOD\tFROM JD\tTO JD\tPOINTS\tEOP\tSAVED")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%d\t%v\t%s\n",
			r.ID, r.Method, r.FromJD, r.ToJD, r.Points, r.CorrectEOP,
			r.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
