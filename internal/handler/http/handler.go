package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-llm-relay/internal/config"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/internal/relay"
	"github.com/MKhiriev/go-llm-relay/internal/service"
	"github.com/MKhiriev/go-llm-relay/internal/utils"
	"github.com/MKhiriev/go-llm-relay/internal/validators"
)

// Dispatcher handles one inbound message of a user.
type Dispatcher interface {
	Dispatch(ctx context.Context, userID, text string, replier relay.Replier) error
}

// ProviderLister lists the names of the available backends.
type ProviderLister interface {
	Names() []string
}

// Services is what the HTTP transport needs from the rest of the relay.
type Services struct {
	Dispatcher     Dispatcher
	Providers      ProviderLister
	AppInfoService service.AppInfoService
}

type Handler struct {
	services Services

	tokenSignKey   string
	tokenIssuer    string
	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator
	validator      validators.Validator

	logger *logger.Logger
}

func NewHandler(services Services, appCfg config.App, serverCfg config.Server, logger *logger.Logger) *Handler {
	if appCfg.TokenSignKey == "" {
		logger.Warn().Msg("no token sign key configured, trusting the X-User-ID header")
	}
	logger.Info().Msg("http handler created")

	return &Handler{
		services:       services,
		tokenSignKey:   appCfg.TokenSignKey,
		tokenIssuer:    appCfg.TokenIssuer,
		requestTimeout: serverCfg.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		validator:      validators.NewRelayValidator(),
		logger:         logger,
	}
}
