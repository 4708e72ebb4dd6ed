package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/engine"
	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/suite"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	if cfg.Runs < 1 {
		cfg.Runs = DefaultRuns
	}
	if cfg.WarmupRuns < 0 {
		cfg.WarmupRuns = DefaultWarmupRuns
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultTolerance
	}
	return &Runner{config: cfg}
}

// Run executes every case of s on every executor, in suite order.
// It stops early only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, s *suite.TestSuite, executors []engine.Executor) (*BenchmarkResult, error) {
	br := &BenchmarkResult{
		SuiteName: s.Name,
		Version:   s.Version,
		Config:    r.config,
		Results:   make(map[string]map[string]CaseResult, len(s.Cases)),
	}
	for _, exec := range executors {
		br.EngineNames = append(br.EngineNames, exec.Name())
	}

	for i := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c := &s.Cases[i]
		br.CaseOrder = append(br.CaseOrder, c.ID)
		br.Results[c.ID] = make(map[string]CaseResult, len(executors))

		for _, exec := range executors {
			cr := r.runCase(ctx, exec, c)
			br.Results[c.ID][exec.Name()] = cr

			if !cr.Passed {
				slog.Warn("case failed", "case", c.ID, "engine", exec.Name(), "reason", cr.Reason)
			}
		}
	}

	return br, nil
}

func (r *Runner) runCase(ctx context.Context, exec engine.Executor, c *suite.Case) CaseResult {
	for i := 0; i < r.config.WarmupRuns; i++ {
		_, _ = exec.Execute(ctx, c.Expression)
	}

	latencies := make([]time.Duration, 0, r.config.Runs)
	var last *engine.Execution
	var lastErr error

	for i := 0; i < r.config.Runs; i++ {
		start := time.Now()
		last, lastErr = exec.Execute(ctx, c.Expression)
		latencies = append(latencies, time.Since(start))
	}

	cr := CaseResult{
		CaseID:     c.ID,
		Expression: c.Expression,
		EngineName: exec.Name(),
		Latency:    ComputeLatencyStats(latencies),
	}

	var value float64
	if lastErr != nil {
		cr.Error = lastErr.Error()
		cr.ErrorCode = errorCode(lastErr)
	} else {
		value = last.Value
		cr.Value = &value
		cr.Postfix = last.Postfix
	}

	cr.Passed, cr.Reason = check(c, value, lastErr, r.config.Tolerance)
	return cr
}

