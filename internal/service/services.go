package service

import (
	"fmt"

	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/store"
	"github.com/MKhiriev/viral-craft/internal/trends"
	"github.com/MKhiriev/viral-craft/internal/utils"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	VideoService   VideoService
	TrendService   TrendService
	AppInfoService AppInfoService
}

// NewServices wires the services. A nil storages runs every service in its
// database-less mode.
func NewServices(storages *store.Storages, catalog *trends.Catalog, random utils.RandomSource, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	var (
		users    store.UserRepository
		videos   store.VideoHistoryRepository
		trendsDB store.TrendingElementRepository
		database Pinger
	)
	if storages != nil {
		users, videos, trendsDB, database = storages.Users, storages.Videos, storages.Trends, storages
	} else {
		logger.Warn().Msg("no database: running with lightweight auth and demo account data")
	}

	videoService, err := NewVideoService(catalog, random, cfg.Generation, users, videos, trendsDB, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating video service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, database, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(users, cfg.App, logger),
		ProfileService: NewProfileService(users, videos, logger),
		VideoService:   videoService,
		TrendService:   NewTrendService(catalog, random, trendsDB, logger),
		AppInfoService: appInfoService,
	}, nil
}
