package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validRelayConfig() *StructuredConfig {
	return &StructuredConfig{
		App:       App{TokenIssuer: "go-llm-relay"},
		Storage:   Storage{DB: DB{DSN: "relay.db"}},
		Server:    Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Minute},
		Providers: Providers{RequestTimeout: time.Minute},
		Workers:   Workers{RehydrationConcurrency: 4},
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "no address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no timeout", mutate: func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "no dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no provider timeout", mutate: func(cfg *StructuredConfig) { cfg.Providers.RequestTimeout = 0 }, wantErr: ErrInvalidProviderConfigs},
		{name: "zero concurrency", mutate: func(cfg *StructuredConfig) { cfg.Workers.RehydrationConcurrency = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{
			name: "sign key without issuer",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.TokenSignKey = "secret"
				cfg.App.TokenIssuer = ""
			},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validRelayConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_BaseURL(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{address: "localhost:8080", want: "http://localhost:8080"},
		{address: "https://relay.example.com/", want: "https://relay.example.com"},
		{address: "", want: ""},
	}

	for _, tt := range tests {
		cfg := newClientConfig(&StructuredConfig{Adapter: Adapter{HTTPAddress: tt.address}})
		assert.Equal(t, tt.want, cfg.Adapter.BaseURL)
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := &ClientConfig{
		App:     ClientApp{TokenIssuer: "go-llm-relay", TokenDuration: time.Hour},
		Adapter: ClientAdapter{BaseURL: "http://localhost:8080", RequestTimeout: time.Minute, UserID: "alice"},
	}
	assert.NoError(t, valid.validate())

	noUser := *valid
	noUser.Adapter.UserID = ""
	assert.ErrorIs(t, noUser.validate(), ErrInvalidAdapterConfigs)

	badToken := *valid
	badToken.App.TokenSignKey = "secret"
	badToken.App.TokenDuration = 0
	assert.ErrorIs(t, badToken.validate(), ErrInvalidAppConfigs)
}
