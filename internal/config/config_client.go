package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientApp holds the token settings the terminal client needs to mint its
// own user token.
type ClientApp struct {
	// TokenSignKey signs the user token; empty means the client identifies
	// itself with the X-User-ID header.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of the minted token.
	TokenIssuer string
	// TokenDuration is the lifetime of the minted token.
	TokenDuration time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the relay base URL, always with a scheme.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// UserID is the identity the client chats as.
	UserID string
}

// ClientConfig is the top-level terminal client configuration assembled
// from [StructuredConfig].
type ClientConfig struct {
	// App contains token settings.
	App ClientApp
	// Adapter contains the relay address, timeout and identity.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config from env, flags and file, maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Adapter: ClientAdapter{
			BaseURL:        baseURL(cfg.Adapter.HTTPAddress),
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UserID:         cfg.Adapter.UserID,
		},
	}
}

func baseURL(address string) string {
	if address == "" {
		return ""
	}
	if strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://") {
		return strings.TrimRight(address, "/")
	}

	return "http://" + address
}
