// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the relay
// and its terminal client. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON or TOML
// file.
//
// Struct tags:
//   - envPrefix  — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env        — direct environment variable name for scalar fields.
//   - envDefault — value used when the variable is not set.
type StructuredConfig struct {
	// App holds application-level settings: version and user token
	// parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the session store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP transport settings of the relay.
	Server Server `envPrefix:"SERVER_"`

	// Providers holds settings shared by all LLM backends.
	Providers Providers `envPrefix:"PROVIDERS_"`

	// Adapter holds the settings the terminal client uses to reach a relay.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the startup workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or TOML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// Storage groups the configuration of the session store.
type Storage struct {
	// DB holds the session store connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB selects and configures the session store backend.
type DB struct {
	// DSN picks the backend by its form:
	//   - "postgres://..." or "postgresql://..." — PostgreSQL via pgx;
	//   - "redis://..." or "rediss://..."        — Redis hash;
	//   - a path ending in ".json"               — JSON file;
	//   - anything else                          — SQLite database file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" envDefault:"relay.db"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running relay.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey is the HMAC key used to sign and verify user tokens.
	// When empty, the HTTP transport trusts the X-User-ID header instead.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim expected in every user token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"go-llm-relay"`

	// TokenDuration is how long a token minted by the terminal client stays
	// valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"24h"`
}

// Server holds network and timeout settings for the inbound transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout bounds a single inbound request, including the backend
	// call it may trigger.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"2m"`
}

// Providers holds settings shared by the LLM backends.
type Providers struct {
	// VerifyCredentials makes every backend check a credential with a cheap
	// authenticated call (listing models) before a client is accepted.
	// Env: PROVIDERS_VERIFY_CREDENTIALS
	VerifyCredentials bool `env:"VERIFY_CREDENTIALS"`

	// RequestTimeout bounds every call made by a backend SDK.
	// Env: PROVIDERS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"90s"`

	// Model overrides; empty means the backend's default model.
	OpenAIModel     string `env:"OPENAI_MODEL"`
	AnthropicModel  string `env:"ANTHROPIC_MODEL"`
	GeminiModel     string `env:"GEMINI_MODEL"`
	GroqModel       string `env:"GROQ_MODEL"`
	GitHubModel     string `env:"GITHUB_MODEL"`
	PerplexityModel string `env:"PERPLEXITY_MODEL"`
}

// Adapter holds the settings the terminal client uses to reach a relay.
type Adapter struct {
	// HTTPAddress is the relay address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout is the timeout of a single request to the relay.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"2m"`

	// UserID is the identity the terminal client chats as.
	// Env: ADAPTER_USER_ID
	UserID string `env:"USER_ID"`
}

// Workers holds configuration for the startup workers.
type Workers struct {
	// RehydrationConcurrency limits how many persisted sessions are
	// reconstructed in parallel at startup.
	// Env: WORKERS_REHYDRATION_CONCURRENCY
	RehydrationConcurrency int `env:"REHYDRATION_CONCURRENCY" envDefault:"4"`
}

// GetStructuredConfig loads, merges, and validates the relay configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or TOML file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid relay config: %w", err)
	}

	return cfg, nil
}

func loadStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withFile().
		build()
}
