package service

import (
	"context"
	"time"

	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/store"
	"github.com/MKhiriev/viral-craft/internal/trends"
	"github.com/MKhiriev/viral-craft/internal/utils"
	"github.com/MKhiriev/viral-craft/models"
)

// PopularityJitter bounds the random shift applied to every snapshot item.
const PopularityJitter = 3

// MostUsedTrendsLimit is the number of stored elements reported by analytics.
const MostUsedTrendsLimit = 5

var topPerformingCategories = []models.CategoryPerformance{
	{Category: models.CategoryDance, AvgViralScore: 89, Growth: "+12%"},
	{Category: models.CategoryFood, AvgViralScore: 85, Growth: "+8%"},
	{Category: models.CategoryPet, AvgViralScore: 87, Growth: "+15%"},
	{Category: models.CategoryComedy, AvgViralScore: 83, Growth: "+5%"},
}

var platformInsights = map[string]models.PlatformInsight{
	"TikTok":    {BestTime: "6-9 PM", Engagement: "High", Trending: "Dance & Comedy"},
	"Instagram": {BestTime: "12-3 PM", Engagement: "Medium-High", Trending: "Beauty & Lifestyle"},
	"YouTube":   {BestTime: "7-10 PM", Engagement: "Medium", Trending: "Tutorials & Reviews"},
}

var viralFactors = []string{
	"Hook within first 3 seconds",
	"Trending audio usage",
	"Strong visual appeal",
	"Relatable content",
	"Clear call-to-action",
}

type trendService struct {
	catalog *trends.Catalog
	random  utils.RandomSource

	// trendRepository is optional; it feeds the usage ranking of analytics.
	trendRepository store.TrendingElementRepository

	now func() time.Time

	logger *logger.Logger
}

func NewTrendService(catalog *trends.Catalog, random utils.RandomSource, trendRepository store.TrendingElementRepository, logger *logger.Logger) TrendService {
	return &trendService{
		catalog:         catalog,
		random:          random,
		trendRepository: trendRepository,
		now:             time.Now,
		logger:          logger,
	}
}

// GetTrendingElements reports the first trends.SnapshotSize catalog items of
// every type with a jittered popularity clamped to
// [trends.MinPopularity, trends.MaxPopularity]. Nothing is cached: every
// call draws new jitter.
func (s *trendService) GetTrendingElements(ctx context.Context) (models.TrendingSnapshot, error) {
	snapshot := models.TrendingSnapshot{
		Sounds:      s.jittered(models.TrendSound),
		Effects:     s.jittered(models.TrendEffect),
		Memes:       s.jittered(models.TrendMeme),
		LastUpdated: s.now().UTC().Format(time.RFC3339),
	}
	snapshot.TotalTrends = len(snapshot.Sounds) + len(snapshot.Effects) + len(snapshot.Memes)

	return snapshot, nil
}

func (s *trendService) jittered(t models.TrendType) []models.TrendSnapshotItem {
	items := s.catalog.ByType(t)
	if len(items) > trends.SnapshotSize {
		items = items[:trends.SnapshotSize]
	}

	out := make([]models.TrendSnapshotItem, 0, len(items))
	for _, item := range items {
		shift := utils.IntBetween(s.random, -PopularityJitter, PopularityJitter)
		out = append(out, models.TrendSnapshotItem{
			Name:       item.Name,
			Popularity: trends.ClampPopularity(item.Popularity + float64(shift)),
			Category:   item.Category,
		})
	}

	return out
}

// GetAnalytics returns the static insight tables. With a store it adds the
// most used stored trends; a store failure only drops that section.
func (s *trendService) GetAnalytics(ctx context.Context) (models.Analytics, error) {
	analytics := models.Analytics{
		TopPerformingCategories: append([]models.CategoryPerformance(nil), topPerformingCategories...),
		PlatformInsights:        make(map[string]models.PlatformInsight, len(platformInsights)),
		ViralFactors:            append([]string(nil), viralFactors...),
	}
	for platform, insight := range platformInsights {
		analytics.PlatformInsights[platform] = insight
	}

	if s.trendRepository == nil {
		return analytics, nil
	}

	mostUsed, err := s.trendRepository.ListTrends(ctx, MostUsedTrendsLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to list most used trends")
		return analytics, nil
	}
	analytics.MostUsedTrends = mostUsed

	return analytics, nil
}
