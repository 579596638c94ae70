package handler

import (
	"github.com/MKhiriev/go-llm-relay/internal/config"
	"github.com/MKhiriev/go-llm-relay/internal/handler/http"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services http.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, cfg.Server, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
