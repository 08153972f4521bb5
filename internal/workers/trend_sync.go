package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/metrics"
	"github.com/MKhiriev/viral-craft/internal/store"
	"github.com/MKhiriev/viral-craft/internal/trends"
	"github.com/MKhiriev/viral-craft/internal/utils"
)

// popularityJitter is the half-width of the popularity drift per sync.
const popularityJitter = 3

type trendSyncWorker struct {
	repo     store.TrendingElementRepository
	catalog  *trends.Catalog
	random   utils.RandomSource
	interval time.Duration

	logger *logger.Logger
}

// NewTrendSyncWorker returns a worker that seeds the stored trending
// elements from catalog and then periodically rewrites their popularity as
// the catalog baseline plus a jitter, clamped to the popularity bounds.
func NewTrendSyncWorker(repo store.TrendingElementRepository, catalog *trends.Catalog, random utils.RandomSource, interval time.Duration, logger *logger.Logger) Worker {
	return &trendSyncWorker{
		repo:     repo,
		catalog:  catalog,
		random:   random,
		interval: interval,
		logger:   logger.WithComponent("trend-sync"),
	}
}

func (w *trendSyncWorker) Run(ctx context.Context) {
	if err := w.repo.SeedTrends(ctx, w.catalog.All()); err != nil {
		w.logger.Err(err).Msg("seeding trending elements failed")
	}

	if w.interval <= 0 {
		w.logger.Warn().Msg("sync interval is not positive, popularity refresh disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("trend sync stopped")
			return
		case <-ticker.C:
			err := w.sync(ctx)
			metrics.RecordTrendSync(err == nil)
			if err != nil {
				w.logger.Err(err).Msg("trend sync failed")
				continue
			}
			w.logger.Debug().Int("items", w.catalog.Len()).Msg("trend popularity refreshed")
		}
	}
}

func (w *trendSyncWorker) sync(ctx context.Context) error {
	for _, item := range w.catalog.All() {
		jitter := float64(w.random.IntN(2*popularityJitter+1) - popularityJitter)
		popularity := trends.ClampPopularity(item.Popularity + jitter)

		if err := w.repo.SetPopularity(ctx, item.Name, popularity); err != nil {
			return fmt.Errorf("set popularity of %q: %w", item.Name, err)
		}
	}

	return nil
}
