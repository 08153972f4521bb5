package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/handler"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/server"
	"github.com/MKhiriev/viral-craft/internal/service"
	"github.com/MKhiriev/viral-craft/internal/store"
	"github.com/MKhiriev/viral-craft/internal/trends"
	"github.com/MKhiriev/viral-craft/internal/utils"
	"github.com/MKhiriev/viral-craft/internal/workers"
	"github.com/MKhiriev/viral-craft/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const storageConnectTimeout = 10 * time.Second

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("viral-craft-server", cfg.App.LogLevel)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Bool("db_disabled", cfg.Storage.DB.Disabled).Msg("received configs")

	storages := openStorages(cfg.Storage.DB, log)
	if storages != nil {
		defer func() {
			if err := storages.Close(); err != nil {
				log.Error().Err(err).Msg("error closing storages")
			}
		}()
	}

	catalog := trends.DefaultCatalog()
	random := utils.NewRandomSource()

	services, err := service.NewServices(storages, catalog, random, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(storages, catalog, random, cfg.Workers, log)

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}

	log.Info().Msg("server stopped")
}

// openStorages returns nil when persistence is disabled or the database
// cannot be opened. The service then runs without a store.
func openStorages(cfg config.DB, log *logger.Logger) *store.Storages {
	if cfg.Disabled {
		log.Info().Msg("database disabled by configuration")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageConnectTimeout)
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("database unavailable, continuing without persistence")
		return nil
	}

	return storages
}
