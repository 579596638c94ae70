package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-llm-relay/internal/config"
	"github.com/MKhiriev/go-llm-relay/internal/handler"
	"github.com/MKhiriev/go-llm-relay/internal/handler/http"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/internal/provider"
	"github.com/MKhiriev/go-llm-relay/internal/relay"
	"github.com/MKhiriev/go-llm-relay/internal/server"
	"github.com/MKhiriev/go-llm-relay/internal/service"
	"github.com/MKhiriev/go-llm-relay/internal/store"
	"github.com/MKhiriev/go-llm-relay/internal/workers"
	"github.com/MKhiriev/go-llm-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-llm-relay")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	sessionStore, err := store.NewSessionStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}
	defer func() {
		if closeErr := sessionStore.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing session store")
		}
	}()

	registry := provider.NewRegistry(provider.NewProviders(cfg.Providers), log)
	manager := service.NewSessionManager(registry, sessionStore, log)

	// sessions are restored before the transport accepts a single message
	startup := workers.NewWorkers(service.NewRehydrator(sessionStore, registry, manager, cfg.Workers, log))
	if err = startup.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	appInfo, err := service.NewAppInfoService(cfg.App, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app info service")
	}

	handlers, err := handler.NewHandlers(http.Services{
		Dispatcher:     relay.NewDispatcher(manager, registry, log),
		Providers:      registry,
		AppInfoService: appInfo,
	}, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
