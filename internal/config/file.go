package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// StructuredFileConfig is the on-disk shape of a configuration file. The
// same layout is accepted as JSON and as TOML.
type StructuredFileConfig struct {
	App struct {
		Version       string   `json:"version" toml:"version"`
		TokenSignKey  string   `json:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" toml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" toml:"token_duration"`
	} `json:"app,omitempty" toml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db,omitempty" toml:"db"`
	} `json:"storage,omitempty" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"server,omitempty" toml:"server"`

	Providers struct {
		VerifyCredentials bool     `json:"verify_credentials" toml:"verify_credentials"`
		RequestTimeout    Duration `json:"request_timeout" toml:"request_timeout"`
		OpenAIModel       string   `json:"openai_model" toml:"openai_model"`
		AnthropicModel    string   `json:"anthropic_model" toml:"anthropic_model"`
		GeminiModel       string   `json:"gemini_model" toml:"gemini_model"`
		GroqModel         string   `json:"groq_model" toml:"groq_model"`
		GitHubModel       string   `json:"github_model" toml:"github_model"`
		PerplexityModel   string   `json:"perplexity_model" toml:"perplexity_model"`
	} `json:"providers,omitempty" toml:"providers"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		UserID         string   `json:"user_id" toml:"user_id"`
	} `json:"adapter,omitempty" toml:"adapter"`

	Workers struct {
		RehydrationConcurrency int `json:"rehydration_concurrency" toml:"rehydration_concurrency"`
	} `json:"workers,omitempty" toml:"workers"`
}

// parseFile reads a configuration file. Files with a ".toml" extension are
// decoded as TOML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	var fileCfg StructuredFileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	default:
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error reading a json file: %w", err)
		}
		defer file.Close()

		if err = json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       f.App.Version,
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: time.Duration(f.App.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: f.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Providers: Providers{
			VerifyCredentials: f.Providers.VerifyCredentials,
			RequestTimeout:    time.Duration(f.Providers.RequestTimeout),
			OpenAIModel:       f.Providers.OpenAIModel,
			AnthropicModel:    f.Providers.AnthropicModel,
			GeminiModel:       f.Providers.GeminiModel,
			GroqModel:         f.Providers.GroqModel,
			GitHubModel:       f.Providers.GitHubModel,
			PerplexityModel:   f.Providers.PerplexityModel,
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
			UserID:         f.Adapter.UserID,
		},
		Workers: Workers{
			RehydrationConcurrency: f.Workers.RehydrationConcurrency,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and TOML, and from plain nanosecond numbers in
// JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
