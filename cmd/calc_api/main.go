// Package main runs the calculator HTTP API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/api/router"
	"github.com/DjordjeVuckovic/calc-hunter/internal/api/server"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/factory"
	"github.com/labstack/echo/v4"
)

const startupTimeout = 15 * time.Second

func main() {
	slog.SetLogLoggerLevel(logLevel(os.Getenv("LOG_LEVEL")))

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	hCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load history configuration", "error", err)
		os.Exit(1)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	backend, err := factory.NewBackend(startCtx, hCfg)
	cancel()
	if err != nil {
		slog.Error("Failed to create history backend", "type", hCfg.Type, "error", err)
		os.Exit(1)
	}
	slog.Info("Evaluation history configured", "type", hCfg.Type)

	s := server.New(sCfg, backend.HealthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Calc API is running")
	})

	calcRouter := router.NewCalcRouter(s.Echo, calc.New(),
		router.WithRecorder(backend.Recorder),
		router.WithMaxExpressionLength(s.Config().MaxExpressionLength),
	)
	calcRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
		backend.Close()
	}()

	err = s.Start()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func logLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo
	}
	return level
}
