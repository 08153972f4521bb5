package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/models"
)

type trendingElementRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewTrendingElementRepository constructs a [TrendingElementRepository]
// backed by db.
func NewTrendingElementRepository(db *DB, logger *logger.Logger) TrendingElementRepository {
	logger.Debug().Msg("creating trending element repository")
	return &trendingElementRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *trendingElementRepository) SeedTrends(ctx context.Context, items []models.TrendItem) error {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return nil
	}

	query, args, err := buildSeedTrendsQuery(r.db.builder(), items, r.now())
	if err != nil {
		log.Err(err).Str("func", "*trendingElementRepository.SeedTrends").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*trendingElementRepository.SeedTrends").Msg("failed to seed trending elements")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if inserted, affErr := result.RowsAffected(); affErr == nil {
		log.Debug().Int64("inserted", inserted).Int("catalog_size", len(items)).Msg("trending elements seeded")
	}

	return nil
}

func (r *trendingElementRepository) ListTrends(ctx context.Context, limit uint64) ([]models.TrendingElement, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTrendsQuery(r.db.builder(), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*trendingElementRepository.ListTrends").Msg("failed to execute query for listing trends")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	trends := make([]models.TrendingElement, 0, 32)
	for rows.Next() {
		trend, scanErr := scanTrend(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*trendingElementRepository.ListTrends").Msg("failed to scan trending element row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		trends = append(trends, trend)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return trends, nil
}

func (r *trendingElementRepository) SetPopularity(ctx context.Context, name string, popularity float64) error {
	query, args, err := buildSetPopularityQuery(r.db.builder(), name, popularity, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*trendingElementRepository.SetPopularity", query, args)
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrTrendNotFound
	}

	return nil
}

// IncrementUsage ignores names that are not stored.
func (r *trendingElementRepository) IncrementUsage(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	query, args, err := buildIncrementUsageQuery(r.db.builder(), names, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.exec(ctx, "*trendingElementRepository.IncrementUsage", query, args)
	return err
}

func (r *trendingElementRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
