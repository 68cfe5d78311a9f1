package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mlfq-sim/internal/core"
	"mlfq-sim/internal/loader"
	"mlfq-sim/internal/report"
	"mlfq-sim/internal/schedulers"
)

var (
	inputPath  string // Process descriptor file
	outputDir  string // Directory receiving one report per scheme
	schemeIDs  []int  // Schemes to simulate
	withGantt  bool   // Append a Gantt chart to text reports
	jsonOutput bool   // Write JSON reports instead of tables
)

// runOptions controls how each scheme's report is written.
type runOptions struct {
	outputDir string
	gantt     bool
	json      bool
}

// runCmd simulates every requested scheme over one descriptor file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation once per scheme and save each report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("input") && cfg.Input != "" {
			inputPath = cfg.Input
		}
		if !cmd.Flags().Changed("output-dir") && cfg.OutputDir != "" {
			outputDir = cfg.OutputDir
		}
		if !cmd.Flags().Changed("schemes") && len(cfg.Schemes) > 0 {
			schemeIDs = cfg.Schemes
		}

		registry, err := cfg.Registry()
		if err != nil {
			return err
		}
		processes, err := loader.LoadProcesses(inputPath)
		if err != nil {
			return err
		}

		opts := runOptions{outputDir: outputDir, gantt: withGantt, json: jsonOutput}
		failed := runSchemes(cmd.OutOrStdout(), processes, registry, schemeIDs, opts)
		if failed > 0 {
			return fmt.Errorf("%d of %d schemes failed", failed, len(schemeIDs))
		}
		logrus.Info("Simulation complete.")
		return nil
	},
}

// runSchemes runs each scheme independently, so one failing scheme does not
// stop the others. It returns the number of failed schemes.
func runSchemes(stdout io.Writer, processes []core.Process, registry *schedulers.Registry, ids []int, opts runOptions) int {
	failed := 0
	for _, id := range ids {
		path, err := runScheme(processes, registry, id, opts)
		if err != nil {
			logrus.Errorf("Error in scheme %d: %v", id, err)
			failed++
			continue
		}
		_, _ = fmt.Fprintf(stdout, "Scheme %d -> results saved to %s\n", id, path)
	}
	return failed
}

func runScheme(processes []core.Process, registry *schedulers.Registry, id int, opts runOptions) (string, error) {
	scheme, err := registry.Lookup(id)
	if err != nil {
		return "", err
	}
	if err := schedulers.ValidateProcesses(processes, scheme.Depth()); err != nil {
		return "", err
	}
	engine, err := schedulers.NewEngineFromScheme(processes, scheme)
	if err != nil {
		return "", err
	}
	result := engine.Run()

	ext := "txt"
	if opts.json {
		ext = "json"
	}
	path := filepath.Join(opts.outputDir, fmt.Sprintf("scheme%doutput.%s", id, ext))
	if err := writeReport(path, result, opts); err != nil {
		return "", err
	}
	return path, nil
}

func writeReport(path string, result schedulers.Result, opts runOptions) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing report: %w", cerr)
		}
	}()

	if opts.json {
		return report.WriteJSON(out, schedulers.GenerateResponse(result, opts.gantt))
	}
	return report.WriteResults(out, result, report.Options{Gantt: opts.gantt})
}

func init() {
	runCmd.Flags().StringVar(&inputPath, "input", "mlfq001.txt", "Process descriptor file (label;burst;arrival;queue, or .yaml)")
	runCmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory for the per-scheme reports")
	runCmd.Flags().IntSliceVar(&schemeIDs, "schemes", []int{1, 2, 3}, "Comma-separated scheme ids to simulate")
	runCmd.Flags().BoolVar(&withGantt, "gantt", false, "Include the dispatch trace (Gantt chart in text reports)")
	runCmd.Flags().BoolVar(&jsonOutput, "json", false, "Write JSON reports instead of tables")

	rootCmd.AddCommand(runCmd)
}
