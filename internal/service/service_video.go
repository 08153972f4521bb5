package service

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/content"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/metrics"
	"github.com/MKhiriev/viral-craft/internal/store"
	"github.com/MKhiriev/viral-craft/internal/trends"
	"github.com/MKhiriev/viral-craft/internal/utils"
	"github.com/MKhiriev/viral-craft/internal/validators"
	"github.com/MKhiriev/viral-craft/models"
)

// Viral score rules.
const (
	BaseViralScore       = 70
	DetailedPromptLength = 50
	DetailedPromptBonus  = 10
	FavoredCategoryBonus = 5
	MultiTrendMinimum    = 2
	MultiTrendBonus      = 8
	MaxScoreJitter       = 10
	MaxViralScore        = 95
)

// trendDraw is the chance-to-skip per trend type: a type contributes an
// element when a uniform draw exceeds its value.
var trendDraw = []struct {
	trendType models.TrendType
	skipBelow float64
}{
	{trendType: models.TrendSound, skipBelow: 0.2},
	{trendType: models.TrendEffect, skipBelow: 0.3},
	{trendType: models.TrendMeme, skipBelow: 0.4},
}

var favoredCategories = map[models.ContentCategory]bool{
	models.CategoryDance: true,
	models.CategoryFood:  true,
	models.CategoryPet:   true,
}

// Estimated reach bounds, in thousands of views.
const (
	reachLowMin  = 10
	reachLowMax  = 100
	reachHighMin = 500
	reachHighMax = 2000
)

// videoRepositories are the optional stores a generation is attributed to.
type videoRepositories struct {
	users  store.UserRepository
	videos store.VideoHistoryRepository
	trends store.TrendingElementRepository
}

func (r videoRepositories) available() bool {
	return r.users != nil && r.videos != nil && r.trends != nil
}

// videoService implements VideoService.
//
// The simulated processing delay waits on a timer in the calling goroutine,
// so concurrent requests wait independently and a cancelled request stops
// waiting immediately.
type videoService struct {
	catalog *trends.Catalog
	random  utils.RandomSource

	minDelay time.Duration
	maxDelay time.Duration

	repositories videoRepositories
	validator    validators.Validator

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	logger *logger.Logger
}

// NewVideoService builds a VideoService drawing trends from catalog.
// Passing nil repositories disables attribution to user history.
func NewVideoService(
	catalog *trends.Catalog,
	random utils.RandomSource,
	cfg config.Generation,
	users store.UserRepository,
	videos store.VideoHistoryRepository,
	trendRepository store.TrendingElementRepository,
	logger *logger.Logger,
) (VideoService, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if cfg.MinDelay < 0 || cfg.MaxDelay < cfg.MinDelay {
		return nil, fmt.Errorf("%w: [%s, %s]", ErrInvalidDelayRange, cfg.MinDelay, cfg.MaxDelay)
	}

	return &videoService{
		catalog:  catalog,
		random:   random,
		minDelay: cfg.MinDelay,
		maxDelay: cfg.MaxDelay,
		repositories: videoRepositories{
			users:  users,
			videos: videos,
			trends: trendRepository,
		},
		validator: validators.NewRequestValidator(),
		now:       time.Now,
		sleep:     sleepContext,
		logger:    logger,
	}, nil
}

// GenerateVideo validates req, waits out the simulated processing time and
// assembles the concept. The returned error is a validators error for a
// missing prompt or the context error when ctx ends during the wait.
func (s *videoService) GenerateVideo(ctx context.Context, req models.GenerateVideoRequest, identity *models.Identity) (models.GenerateVideoResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.GenerateVideoResponse{}, fmt.Errorf("invalid generation request: %w", err)
	}

	delay := s.processingDelay()
	if err := s.sleep(ctx, delay); err != nil {
		log.Debug().Err(err).Dur("delay", delay).Msg("generation abandoned during processing")
		return models.GenerateVideoResponse{}, fmt.Errorf("generation interrupted: %w", err)
	}

	category := content.Classify(req.Prompt)
	applied := s.selectTrends()
	score := s.viralScore(req.Prompt, category, len(applied))

	response := models.GenerateVideoResponse{
		Success:             true,
		Description:         content.Describe(req.Prompt, category, applied),
		AppliedTrends:       applied,
		EstimatedViralScore: score,
		SuggestedPlatforms:  content.Platforms(category),
		ContentCategory:     category,
		ProcessingTime:      math.Round(delay.Seconds()*100) / 100,
		GeneratedAt:         s.now().Unix(),
		Recommendations: models.Recommendations{
			BestPostingTime:   content.BestPostingTime,
			SuggestedHashtags: content.Hashtags(category),
			EstimatedReach:    s.estimatedReach(),
		},
	}

	metrics.RecordGeneration(string(category), score)
	log.Debug().
		Str("category", string(category)).
		Int("score", score).
		Strs("trends", applied).
		Msg("video concept generated")

	if identity != nil {
		s.attribute(ctx, *identity, req.Prompt, response)
	}

	return response, nil
}

func (s *videoService) processingDelay() time.Duration {
	spread := float64(s.maxDelay - s.minDelay)
	return s.minDelay + time.Duration(s.random.Float64()*spread)
}

// selectTrends draws at most one popular item per trend type.
func (s *videoService) selectTrends() []string {
	applied := make([]string, 0, len(trendDraw))
	for _, draw := range trendDraw {
		if s.random.Float64() <= draw.skipBelow {
			continue
		}

		pool := s.catalog.Popular(draw.trendType)
		if len(pool) == 0 {
			continue
		}

		applied = append(applied, utils.Choice(s.random, pool).Name)
	}

	return applied
}

func (s *videoService) viralScore(prompt string, category models.ContentCategory, appliedCount int) int {
	score := BaseViralScore
	if utf8.RuneCountInString(prompt) > DetailedPromptLength {
		score += DetailedPromptBonus
	}
	if favoredCategories[category] {
		score += FavoredCategoryBonus
	}
	if appliedCount >= MultiTrendMinimum {
		score += MultiTrendBonus
	}

	return min(MaxViralScore, score+utils.IntBetween(s.random, 0, MaxScoreJitter))
}

func (s *videoService) estimatedReach() string {
	low := utils.IntBetween(s.random, reachLowMin, reachLowMax)
	high := utils.IntBetween(s.random, reachHighMin, reachHighMax)
	return fmt.Sprintf("%dK - %dK views", low, high)
}

// attribute records the generation for a stored user. Failures are logged
// and counted but never fail the request.
func (s *videoService) attribute(ctx context.Context, identity models.Identity, prompt string, response models.GenerateVideoResponse) {
	log := logger.FromContext(ctx)

	if !s.repositories.available() {
		return
	}

	userID, ok := identity.PersistedID()
	if !ok {
		log.Debug().Str("user_id", identity.UserID).Msg("identity is not a stored user, generation not attributed")
		return
	}

	_, err := s.repositories.videos.CreateVideo(ctx, models.VideoHistory{
		UserID:             userID,
		Prompt:             prompt,
		Description:        response.Description,
		AppliedTrends:      response.AppliedTrends,
		ViralScore:         float64(response.EstimatedViralScore),
		ContentCategory:    response.ContentCategory,
		SuggestedPlatforms: response.SuggestedPlatforms,
		CreatedAt:          time.Unix(response.GeneratedAt, 0).UTC(),
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to save video history")
		metrics.RecordAttributionFailure("history")
	}

	if err = s.repositories.users.IncrementStats(ctx, userID, float64(response.EstimatedViralScore)); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to update user stats")
		metrics.RecordAttributionFailure("stats")
	}

	if err = s.repositories.trends.IncrementUsage(ctx, response.AppliedTrends); err != nil {
		log.Err(err).Strs("trends", response.AppliedTrends).Msg("failed to update trend usage")
		metrics.RecordAttributionFailure("trend_usage")
	}
}

// sleepContext waits for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
