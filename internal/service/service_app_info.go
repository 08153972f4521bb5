package service

import (
	"context"

	"github.com/MKhiriev/viral-craft/internal/app"
	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/models"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type appInfoService struct {
	appVersion  string
	serviceName string

	// database is nil when the service runs without persistence.
	database Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, database Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		serviceName: cfg.ServiceName,
		database:    database,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health always reports "healthy"; the database field tells whether the
// store answered a ping.
func (s *appInfoService) Health(ctx context.Context) models.Health {
	database := app.DatabaseNotAvailable
	if s.database != nil {
		if err := s.database.Ping(ctx); err != nil {
			logger.FromContext(ctx).Err(err).Msg("database ping failed")
		} else {
			database = app.DatabaseConnected
		}
	}

	return models.Health{
		Status:   app.StatusHealthy,
		Service:  s.serviceName,
		Database: database,
		Version:  s.appVersion,
	}
}
