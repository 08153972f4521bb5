package http

import (
	"time"

	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/service"
	"github.com/MKhiriev/viral-craft/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// requestTimeout bounds every request context; zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewRequestValidator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
