// Package main runs an arithmetic regression suite against the in-process
// calculator and, optionally, a running calc API.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/engine"
	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/report"
	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/runner"
	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/suite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 when every case passed, 1 otherwise, 2 on bad flags.
func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	cfg, err := parseFlags(args, errOut)
	if err != nil {
		slog.Error("Invalid flags", "error", err)
		return 2
	}

	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		return 1
	}

	executors, cleanup, err := engine.Create(ctx, cfg.APIURL)
	if err != nil {
		slog.Error("Failed to create executors", "error", err)
		return 1
	}
	defer cleanup()

	r := runner.New(runner.Config{
		WarmupRuns: cfg.Warmup,
		Runs:       cfg.Runs,
		Tolerance:  cfg.Tolerance,
	})
	result, err := r.Run(ctx, s, executors)
	if err != nil {
		slog.Error("Benchmark failed", "error", err)
		return 1
	}

	rpt := report.Generate(result)
	if err := report.WriteTable(rpt, out); err != nil {
		slog.Error("Failed to write table", "error", err)
		return 1
	}

	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			return 1
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if failed := rpt.Failed(); failed > 0 {
		slog.Error("Benchmark has failing cases", "failed", failed)
		return 1
	}
	return 0
}
