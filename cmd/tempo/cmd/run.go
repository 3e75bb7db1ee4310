package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/psantana5/tempo/pkg/bench"
	"github.com/psantana5/tempo/pkg/hostinfo"
	"github.com/psantana5/tempo/pkg/logging"
	"github.com/psantana5/tempo/pkg/metrics"
	"github.com/psantana5/tempo/pkg/report"
	"github.com/psantana5/tempo/pkg/shutdown"
	"github.com/psantana5/tempo/pkg/sweep"
)

var (
	runWorkload      string
	runAxes          []string
	runSweepFile     string
	runName          string
	runPace          float64
	runNoArgs        bool
	runNoOutput      bool
	runJSONOut       string
	runCSVOut        string
	runMetricsListen string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Time a workload over a parameter sweep",
	Long: `Run a built-in workload once per combination of the supplied axes,
timing every call. Axes come from repeated --axis flags or from a YAML
sweep file. The first axis varies slowest.`,
	Example: `  tempo run --workload sleep --axis 5ms,10ms
  tempo run --workload spin --axis 1000,100000 --pace 2
  tempo run --sweep sweep.yaml --output json`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runWorkload, "workload", "", "workload to time (see `tempo workloads`)")
	runCmd.Flags().StringArrayVar(&runAxes, "axis", nil, "comma-separated values for one parameter (repeatable)")
	runCmd.Flags().StringVar(&runSweepFile, "sweep", "", "YAML sweep definition file")
	runCmd.Flags().StringVar(&runName, "name", "", "name recorded in the report")
	runCmd.Flags().Float64Var(&runPace, "pace", 0, "maximum calls per second (0 = unpaced)")
	runCmd.Flags().BoolVar(&runNoArgs, "no-args", false, "do not record argument tuples")
	runCmd.Flags().BoolVar(&runNoOutput, "no-output", false, "do not record workload outputs")
	runCmd.Flags().StringVar(&runJSONOut, "json-out", "", "write the report as JSON to this file")
	runCmd.Flags().StringVar(&runCSVOut, "csv-out", "", "write the report as CSV to this file")
	runCmd.Flags().StringVar(&runMetricsListen, "metrics-listen", "", "serve Prometheus metrics on this address after the run (e.g. :9090)")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	def, err := buildDefinition()
	if err != nil {
		return err
	}
	wl, err := lookupWorkload(def.Workload)
	if err != nil {
		return err
	}

	runner := bench.NewRunner()
	runner.RecordArgs = def.ShouldRecordArgs()
	runner.RecordOutput = def.ShouldRecordOutput()
	runner.Logger = logger
	if def.Pace > 0 {
		runner.Limiter = rate.NewLimiter(rate.Limit(def.Pace), 1)
	}

	host, err := hostinfo.Collect()
	if err != nil {
		logger.Warn("host probe incomplete", map[string]interface{}{"error": err.Error()})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("starting sweep", map[string]interface{}{
		"workload": def.Workload,
		"calls":    len(bench.Combinations(def.Axes)),
	})

	acc, data, runErr := runner.RunCombinations(ctx, wl.Fn, def.Axes)

	rep := report.New(acc, data, report.Options{
		Name:         def.Name,
		Workload:     def.Workload,
		RecordArgs:   runner.RecordArgs,
		RecordOutput: runner.RecordOutput,
		Host:         host,
	})

	if runErr != nil {
		logger.Error("sweep aborted, report covers completed calls only", map[string]interface{}{"error": runErr.Error()})
	}

	if IsJSONOutput() {
		if err := rep.WriteJSON(os.Stdout); err != nil {
			return err
		}
	} else {
		rep.RenderTable(os.Stdout)
	}

	if runJSONOut != "" {
		if err := writeReportFile(runJSONOut, rep.WriteJSON); err != nil {
			return err
		}
	}
	if runCSVOut != "" {
		if err := writeReportFile(runCSVOut, rep.WriteCSV); err != nil {
			return err
		}
	}

	if runMetricsListen != "" && runErr == nil {
		serveMetrics(rep, logger)
	}

	return runErr
}

// buildDefinition assembles the sweep from --sweep or from the
// --workload/--axis flags.
func buildDefinition() (*sweep.Definition, error) {
	if runSweepFile != "" {
		def, err := sweep.Load(runSweepFile)
		if err != nil {
			return nil, err
		}
		if runName != "" {
			def.Name = runName
		}
		if runPace > 0 {
			def.Pace = runPace
		}
		return def, nil
	}

	if runWorkload == "" {
		return nil, errors.New("either --sweep or --workload is required")
	}
	if len(runAxes) == 0 {
		return nil, errors.New("at least one --axis is required")
	}

	axes := make([][]any, 0, len(runAxes))
	for i, spec := range runAxes {
		axis, err := parseAxis(spec)
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
		axes = append(axes, axis)
	}

	recordArgs := !runNoArgs
	recordOutput := !runNoOutput
	return &sweep.Definition{
		Name:         runName,
		Workload:     runWorkload,
		Pace:         runPace,
		Axes:         axes,
		RecordArgs:   &recordArgs,
		RecordOutput: &recordOutput,
	}, nil
}

// parseAxis splits a comma-separated value list, coercing each element
// to int, then float, falling back to string.
func parseAxis(spec string) ([]any, error) {
	parts := strings.Split(spec, ",")
	axis := make([]any, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("empty value in axis %q", spec)
		}
		if n, err := strconv.Atoi(p); err == nil {
			axis = append(axis, n)
			continue
		}
		if f, err := strconv.ParseFloat(p, 64); err == nil {
			axis = append(axis, f)
			continue
		}
		axis = append(axis, p)
	}
	return axis, nil
}

func writeReportFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// serveMetrics exposes the run's timings for scraping until SIGINT or
// SIGTERM.
func serveMetrics(rep *report.Report, logger *logging.Logger) {
	exporter := metrics.NewExporter()
	exporter.ObserveReport(rep)

	srv := &http.Server{
		Addr:    runMetricsListen,
		Handler: exporter.Routes(),
	}

	mgr := shutdown.New(10 * time.Second)
	mgr.Register(srv.Shutdown)

	go func() {
		logger.Info("serving metrics", map[string]interface{}{"addr": runMetricsListen})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	mgr.Wait()
	for _, err := range mgr.Shutdown() {
		logger.Error("shutdown error", map[string]interface{}{"error": err.Error()})
	}
}
