package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
)

const pingTimeout = 5 * time.Second

// Create builds the local executor and, when apiURL is set, an API executor.
// The API is pinged with the echo command before it is used.
func Create(ctx context.Context, apiURL string) ([]Executor, func(), error) {
	executors := []Executor{NewLocalExecutor(calc.New())}

	if apiURL != "" {
		api, err := NewAPIExecutor(apiURL)
		if err != nil {
			return nil, nil, err
		}

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if _, err := api.client.Echo(pingCtx); err != nil {
			return nil, nil, fmt.Errorf("api executor %s unreachable: %w", apiURL, err)
		}
		slog.Info("Created executor", "name", api.Name(), "url", apiURL)
		executors = append(executors, api)
	}

	cleanup := func() {
		for _, exec := range executors {
			if err := exec.Close(); err != nil {
				slog.Warn("Failed to close executor", "name", exec.Name(), "error", err)
			}
		}
	}

	return executors, cleanup, nil
}
