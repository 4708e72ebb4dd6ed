package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/es"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/in_mem"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history/pg"
	pkgserver "github.com/DjordjeVuckovic/calc-hunter/pkg/server"
)

// Backend bundles a recorder with the health checker and cleanup for its storage.
type Backend struct {
	Recorder      history.Recorder
	HealthChecker pkgserver.HealthChecker
	Close         func()
}

// NewBackend creates the history backend selected by cfg.Type.
func NewBackend(ctx context.Context, cfg *HistoryConfig) (*Backend, error) {
	noop := func() {}

	switch cfg.Type {
	case history.None:
		return &Backend{
			Recorder:      history.NewNopRecorder(),
			HealthChecker: pkgserver.NewOkHealthChecker(),
			Close:         noop,
		}, nil

	case history.InMem:
		return &Backend{
			Recorder:      in_mem.NewInMemRecorder(cfg.InMemCapacity),
			HealthChecker: pkgserver.NewOkHealthChecker(),
			Close:         noop,
		}, nil

	case history.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("invalid config for PostgreSQL history: missing pool config")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		recorder, err := pg.NewRecorder(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{
			Recorder:      recorder,
			HealthChecker: pg.NewHealthChecker(pool),
			Close:         pool.Close,
		}, nil

	case history.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("invalid config for Elasticsearch history: missing client config")
		}
		recorder, err := es.NewRecorder(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Recorder:      recorder,
			HealthChecker: pkgserver.NewOkHealthChecker(),
			Close:         noop,
		}, nil

	default:
		return nil, fmt.Errorf(string(history.ErrUnsupportedRecorder), cfg.Type)
	}
}
