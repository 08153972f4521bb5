package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/models"
)

type videoHistoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVideoHistoryRepository constructs a [VideoHistoryRepository] backed by db.
func NewVideoHistoryRepository(db *DB, logger *logger.Logger) VideoHistoryRepository {
	logger.Debug().Msg("creating video history repository")
	return &videoHistoryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateVideo stores a generation record. Nil list fields are stored as
// empty lists.
func (r *videoHistoryRepository) CreateVideo(ctx context.Context, video models.VideoHistory) (models.VideoHistory, error) {
	log := logger.FromContext(ctx)

	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now().UTC()
	}
	if video.AppliedTrends == nil {
		video.AppliedTrends = models.StringList{}
	}
	if video.SuggestedPlatforms == nil {
		video.SuggestedPlatforms = models.StringList{}
	}

	query, args, err := buildCreateVideoQuery(r.db.builder(), video)
	if err != nil {
		log.Err(err).Str("func", "*videoHistoryRepository.CreateVideo").Msg("failed to build query")
		return models.VideoHistory{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanVideo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*videoHistoryRepository.CreateVideo").
			Int64("user_id", video.UserID).
			Str("error_class", r.db.classify(err).String()).
			Msg("error saving video history")
		return models.VideoHistory{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *videoHistoryRepository) ListByUser(ctx context.Context, userID int64) ([]models.VideoHistory, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVideosQuery(r.db.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*videoHistoryRepository.ListByUser").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*videoHistoryRepository.ListByUser").
			Int64("user_id", userID).
			Msg("failed to execute query for listing video history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	videos := make([]models.VideoHistory, 0, 16)
	for rows.Next() {
		video, scanErr := scanVideo(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*videoHistoryRepository.ListByUser").
				Int64("user_id", userID).
				Msg("failed to scan video history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		videos = append(videos, video)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*videoHistoryRepository.ListByUser").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return videos, nil
}

func (r *videoHistoryRepository) SetFavorite(ctx context.Context, userID, videoID int64, favorite bool) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetFavoriteQuery(r.db.builder(), userID, videoID, favorite)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*videoHistoryRepository.SetFavorite").
			Int64("user_id", userID).
			Int64("video_id", videoID).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrVideoNotFound
	}

	return nil
}
