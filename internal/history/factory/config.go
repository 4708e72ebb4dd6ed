package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/es"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/pg"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/utils"
)

type HistoryConfig struct {
	history.Type
	InMemCapacity int
	Pg            *pg.PoolConfig
	Es            *es.ClientConfig
}

// LoadEnv reads HISTORY_TYPE and the backend settings it requires.
// An unset HISTORY_TYPE disables history.
func LoadEnv() (*HistoryConfig, error) {
	historyType := history.Type(os.Getenv("HISTORY_TYPE"))
	if historyType == "" {
		slog.Info("HISTORY_TYPE is not set, evaluation history disabled")
		historyType = history.None
	}

	supported := []history.Type{history.None, history.InMem, history.PG, history.ES}
	switch historyType {
	case history.None, history.InMem, history.PG, history.ES:
	default:
		slog.Error("Invalid HISTORY_TYPE environment variable value", "value", historyType)
		return nil, fmt.Errorf(
			"invalid HISTORY_TYPE environment variable value: %s, expected one of %v",
			historyType,
			supported)
	}

	cfg := &HistoryConfig{Type: historyType}

	switch historyType {
	case history.InMem:
		if raw := os.Getenv("HISTORY_CAPACITY"); raw != "" {
			capacity, err := strconv.Atoi(raw)
			if err != nil || capacity <= 0 {
				return nil, fmt.Errorf("HISTORY_CAPACITY must be a positive number, got %q", raw)
			}
			cfg.InMemCapacity = capacity
		}
	case history.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	case history.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitList(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if cfg.Es.IndexName == "" {
			cfg.Es.IndexName = "evaluations"
		}
		if len(cfg.Es.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses are missing")
		}
	}

	return cfg, nil
}
