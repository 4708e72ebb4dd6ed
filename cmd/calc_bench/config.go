package main

import (
	"flag"
	"fmt"
	"io"
)

type cliConfig struct {
	SuitePath string
	APIURL    string
	Warmup    int
	Runs      int
	Tolerance float64
	Output    string
}

func parseFlags(args []string, errOut io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("calc_bench", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.SuitePath, "suite", "configs/bench/arithmetic_v1.yaml", "Path to bench suite YAML")
	fs.StringVar(&cfg.APIURL, "api", "", "Base URL of a running calc API, also benchmarked when set")
	fs.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup runs per case before measurement")
	fs.IntVar(&cfg.Runs, "runs", 1, "Number of measured runs per case")
	fs.Float64Var(&cfg.Tolerance, "tolerance", 1e-9, "Default relative tolerance for expected values")
	fs.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.Runs < 1 {
		return cfg, fmt.Errorf("runs must be at least 1, got %d", cfg.Runs)
	}
	if cfg.Warmup < 0 {
		return cfg, fmt.Errorf("warmup must not be negative, got %d", cfg.Warmup)
	}
	if cfg.Tolerance <= 0 {
		return cfg, fmt.Errorf("tolerance must be positive, got %v", cfg.Tolerance)
	}
	return cfg, nil
}
