// Package main provides the CLI entry point for superbenchmark, a harness
// that runs built-in workloads through the shared benchmark lifecycle.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/polarG/superbenchmark/internal/config"
	"github.com/polarG/superbenchmark/internal/logging"
	"github.com/polarG/superbenchmark/internal/report"
	"github.com/polarG/superbenchmark/internal/workloads/digest"
	"github.com/polarG/superbenchmark/internal/workloads/gemm"
	"github.com/polarG/superbenchmark/pkg/benchmark"
)

func main() {
	logger, logShutdown, err := logging.NewLogger()
	if err != nil {
		// we do this as no point trying to continue
		logging.FallbackLogger().Error("Failed to create logger", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		_ = logShutdown()
	}()

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Error("Command failed", "error", err.Error())
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "superbenchmark",
		Short: "Run built-in workloads through the shared benchmark lifecycle",
		Long: `Superbenchmark executes built-in measurement workloads through the
shared benchmark lifecycle: argument parsing, repeated invocation, timestamp
capture, and structural validation of the produced results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newBatchCmd(logger))
	root.AddCommand(newSettingsCmd())

	return root
}

// newWorkload maps a built-in workload name to its measurement step and its
// category. This is a fixed set, not a registration mechanism.
func newWorkload(name string) (benchmark.Workload, benchmark.BenchmarkType, error) {
	switch name {
	case "gemm":
		return gemm.New(), benchmark.TypeModel, nil
	case "digest":
		return digest.New(), benchmark.TypeMicro, nil
	default:
		return nil, "", fmt.Errorf("unknown workload: %s (available: gemm, digest)", name)
	}
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		workloadName string
		parameters   string
		outputDir    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one built-in workload and print its serialized result",
		RunE: func(_ *cobra.Command, _ []string) error {
			workload, benchType, err := newWorkload(workloadName)
			if err != nil {
				return err
			}

			b := benchmark.New(workloadName, benchType, parameters, workload, logger)
			ok := b.Run()

			fmt.Println(b.SerializedResult())

			if outputDir != "" {
				if err := report.Write(outputDir, []*benchmark.Result{b.Result()}); err != nil {
					return err
				}
			}

			if !ok {
				return fmt.Errorf("benchmark %s failed: %s", workloadName, b.ReturnCode())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&workloadName, "workload", "",
		"Built-in workload to run (gemm, digest)")
	flags.StringVar(&parameters, "parameters", "",
		"Raw benchmark parameter string, e.g. \"--run_count 3 --duration 5\"")
	flags.StringVar(&outputDir, "output", "",
		"Directory to write the result record to (optional)")
	_ = cmd.MarkFlagRequired("workload")

	return cmd
}

func newBatchCmd(logger *slog.Logger) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every benchmark listed in the runner configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf, err := config.LoadRunnerConfig(logger, configPath)
			if err != nil {
				return err
			}

			var results []*benchmark.Result
			failed := 0
			for _, entry := range conf.Benchmarks {
				workload, _, err := newWorkload(entry.Name)
				if err != nil {
					return err
				}
				// the category comes from the config so a misdeclared entry
				// surfaces as an invalid-type failure instead of being masked
				benchType, _ := benchmark.GetBenchmarkType(entry.Type)

				b := benchmark.New(entry.Name, benchType, entry.Parameters, workload, logger)
				if !b.Run() {
					failed++
				}
				results = append(results, b.Result())
			}

			if err := report.Generate(os.Stdout, results); err != nil {
				return err
			}
			if conf.OutputDir != "" {
				if err := report.Write(conf.OutputDir, results); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d benchmarks failed", failed, len(conf.Benchmarks))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "",
		"Path to the runner config file (default: search superbenchmark.yaml)")

	return cmd
}

func newSettingsCmd() *cobra.Command {
	var workloadName string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the configurable settings of a built-in workload",
		RunE: func(_ *cobra.Command, _ []string) error {
			workload, benchType, err := newWorkload(workloadName)
			if err != nil {
				return err
			}

			b := benchmark.New(workloadName, benchType, "", workload, nil)
			fmt.Println(b.ConfigurableSettings())
			return nil
		},
	}

	cmd.Flags().StringVar(&workloadName, "workload", "",
		"Built-in workload to inspect (gemm, digest)")
	_ = cmd.MarkFlagRequired("workload")

	return cmd
}
