package main

import (
	"fmt"

	"github.com/MKhiriev/go-llm-relay/internal/adapter"
	"github.com/MKhiriev/go-llm-relay/internal/client"
	"github.com/MKhiriev/go-llm-relay/internal/config"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-llm-relay-cli")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	relayAdapter, err := adapter.NewHTTPRelayAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create relay adapter")
	}

	app := client.NewApp(relayAdapter, tui.New(relayAdapter, log), log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
