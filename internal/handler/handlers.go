// Package handler builds the inbound transport handlers of the service.
package handler

import (
	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/handler/http"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
