package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"solvestats/adapters/chart"
	"solvestats/adapters/cstimer"
	"solvestats/internal/analysis"
	"solvestats/internal/config"
	"solvestats/ui"

	svc "solvestats/app"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Missing .env is fine; environment variables still apply.
	if err := godotenv.Load(); err != nil {
		log.Printf("[Main] No .env file loaded: %v", err)
	}

	rootCmd := &cobra.Command{
		Use:   "solvestats",
		Short: "Solve-time statistics and histogram charts from csTimer exports",
	}

	rootCmd.AddCommand(
		newStatsCmd(),
		newChartCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readerOptions(delimiter string, skipMalformed bool) cstimer.Options {
	opts := cstimer.DefaultOptions()
	if delimiter != "" {
		opts.Delimiter = rune(delimiter[0])
	}
	opts.SkipMalformed = skipMalformed
	return opts
}

func newStatsCmd() *cobra.Command {
	var delimiter string
	var skipMalformed bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats [export-file]",
		Short: "Print aggregate statistics and the histogram for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := svc.NewAnalysisService(analysis.NewEngine(), chart.NewWriter(chart.DefaultOptions()))
			a, err := service.AnalyzeFile(args[0], readerOptions(delimiter, skipMalformed))
			if err != nil {
				return err
			}

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(a)
			}

			fmt.Printf("solves:  %d\n", a.Stats.TotalCount)
			fmt.Printf("valid:   %d\n", a.Stats.ValidCount)
			fmt.Printf("DNFs:    %d\n", a.Stats.FailureCount)
			fmt.Printf("mean:    %.2f\n", a.Stats.Mean)
			fmt.Printf("stdev:   %.2f\n", a.Stats.Stdev)
			fmt.Printf("fastest: %.2f\n", a.Stats.Fastest)
			fmt.Println()
			for i, label := range a.Histogram.Labels {
				fmt.Printf("%6s  %d\n", label, a.Histogram.Counts[i])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&delimiter, "delimiter", ";", "CSV field delimiter")
	cmd.Flags().BoolVar(&skipMalformed, "skip-malformed", false, "Skip rows with unparseable times instead of aborting")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the full analysis as JSON")

	return cmd
}

func newChartCmd() *cobra.Command {
	var delimiter string
	var skipMalformed bool
	var output string
	var title string
	var normalCurve bool

	cmd := &cobra.Command{
		Use:   "chart [export-file]",
		Short: "Render the session histogram to an xlsx chart",
		Long: `Render the session histogram as an xlsx workbook with an embedded bar
chart, optionally overlaid with the fitted normal-distribution curve.

Example: solvestats chart session.csv -o histogram.xlsx --normal-curve=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("--output is required")
			}

			writer := chart.NewWriter(chart.Options{Title: title, NormalCurve: normalCurve})
			service := svc.NewAnalysisService(analysis.NewEngine(), writer)
			a, err := service.AnalyzeFile(args[0], readerOptions(delimiter, skipMalformed))
			if err != nil {
				return err
			}
			return service.WriteChart(a, output)
		},
	}

	cmd.Flags().StringVar(&delimiter, "delimiter", ";", "CSV field delimiter")
	cmd.Flags().BoolVar(&skipMalformed, "skip-malformed", false, "Skip rows with unparseable times instead of aborting")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output xlsx path")
	cmd.Flags().StringVar(&title, "title", "3x3 Solve Histogram", "Chart title")
	cmd.Flags().BoolVar(&normalCurve, "normal-curve", true, "Overlay the fitted normal curve")

	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the histogram page and JSON API",
		Long: `Serve the solve statistics over HTTP. Configuration comes from the
environment (or a .env file): SOLVES_FILE is required, PORT, CHART_TITLE,
CHART_NORMAL_CURVE, SOLVES_DELIMITER and SOLVES_SKIP_MALFORMED are
optional.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			writer := chart.NewWriter(chart.Options{
				Title:       cfg.Chart.Title,
				NormalCurve: cfg.Chart.NormalCurve,
			})
			service := svc.NewAnalysisService(analysis.NewEngine(), writer)

			webApp, err := ui.NewApp(service, cfg)
			if err != nil {
				return err
			}
			return webApp.Run(cfg.Server.Port)
		},
	}
	return cmd
}
