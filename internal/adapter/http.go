package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-llm-relay/internal/config"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/internal/utils"
	"github.com/MKhiriev/go-llm-relay/models"
)

const userIDHeader = "X-User-ID"

type httpRelayAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRelayAdapter constructs the HTTP implementation of [RelayAdapter].
//
// With a token sign key in appCfg the adapter mints its own user token for
// adapterCfg.UserID and sends it as a bearer token; otherwise it identifies
// the user with the X-User-ID header.
func NewHTTPRelayAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RelayAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if strings.TrimSpace(adapterCfg.UserID) == "" {
		return nil, ErrNoIdentity
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	if appCfg.TokenSignKey == "" {
		client.SetHeader(userIDHeader, adapterCfg.UserID)
	} else {
		token, err := utils.GenerateJWTToken(appCfg.TokenIssuer, adapterCfg.UserID, appCfg.TokenDuration, appCfg.TokenSignKey)
		if err != nil {
			return nil, fmt.Errorf("error minting user token: %w", err)
		}
		client.SetAuthToken(token.SignedString)
	}

	logger.Debug().Str("base_url", baseURL).Msg("relay adapter created")

	return &httpRelayAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendMessage implements [RelayAdapter] with POST /api/messages.
func (h *httpRelayAdapter) SendMessage(ctx context.Context, text string) ([]models.Reply, error) {
	var result models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.MessageRequest{Text: text}).
		SetResult(&result).
		Post("/api/messages")
	if err != nil {
		return nil, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Replies, nil
}

// Providers implements [RelayAdapter] with GET /api/providers.
func (h *httpRelayAdapter) Providers(ctx context.Context) ([]string, error) {
	var result models.ProvidersResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/providers")
	if err != nil {
		return nil, fmt.Errorf("providers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Providers, nil
}

// Version implements [RelayAdapter] with GET /api/version.
func (h *httpRelayAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var result models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return result, nil
}
