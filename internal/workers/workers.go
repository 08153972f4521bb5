package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/store"
	"github.com/MKhiriev/viral-craft/internal/trends"
	"github.com/MKhiriev/viral-craft/internal/utils"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the background workers. The trend sync worker needs a
// store, so a nil storages yields an empty set.
func NewWorkers(storages *store.Storages, catalog *trends.Catalog, random utils.RandomSource, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if storages == nil {
		logger.Info().Msg("no database: trend sync worker disabled")
		return w
	}

	w.workers = append(w.workers, NewTrendSyncWorker(storages.Trends, catalog, random, cfg.TrendSyncInterval, logger))
	return w
}

// NewWorkersOf groups already built workers.
func NewWorkersOf(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker on its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Go(func() {
			worker.Run(ctx)
		})
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
