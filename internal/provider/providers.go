package provider

import (
	"github.com/MKhiriev/go-llm-relay/internal/config"
)

// Display names of the supported backends. They double as the exact input a
// user must send to pick a backend.
const (
	NameAnthropic  = "Anthropic (Claude)"
	NameGitHub     = "GitHub model marketplace"
	NameGemini     = "Google (Gemini)"
	NameGroq       = "Groq"
	NameOpenAI     = "OpenAI"
	NamePerplexity = "perplexity.ai"
)

const (
	defaultAnthropicModel  = "claude-3-7-sonnet-latest"
	defaultGitHubModel     = "gpt-4o"
	defaultGeminiModel     = "gemini-2.0-flash"
	defaultGroqModel       = "llama3-8b-8192"
	defaultOpenAIModel     = "gpt-4o"
	defaultPerplexityModel = "llama-3.1-sonar-small-128k-online"

	gitHubBaseURL     = "https://models.inference.ai.azure.com/"
	groqBaseURL       = "https://api.groq.com/openai/v1/"
	perplexityBaseURL = "https://api.perplexity.ai/"
)

// NewProviders returns the closed backend set, in the order it is offered
// to users.
func NewProviders(cfg config.Providers) []Provider {
	verify, timeout := cfg.VerifyCredentials, cfg.RequestTimeout

	return []Provider{
		{
			Name:      NameAnthropic,
			Construct: anthropicConstruct(NameAnthropic, orDefault(cfg.AnthropicModel, defaultAnthropicModel), verify, timeout),
		},
		{
			Name: NameGitHub,
			Construct: openAICompatible{
				name:          NameGitHub,
				baseURL:       gitHubBaseURL,
				model:         orDefault(cfg.GitHubModel, defaultGitHubModel),
				canListModels: true,
			}.construct(verify, timeout),
		},
		{
			Name:      NameGemini,
			Construct: geminiConstruct(NameGemini, orDefault(cfg.GeminiModel, defaultGeminiModel), verify, timeout),
		},
		{
			Name: NameGroq,
			Construct: openAICompatible{
				name:          NameGroq,
				baseURL:       groqBaseURL,
				model:         orDefault(cfg.GroqModel, defaultGroqModel),
				canListModels: true,
			}.construct(verify, timeout),
		},
		{
			Name: NameOpenAI,
			Construct: openAICompatible{
				name:          NameOpenAI,
				model:         orDefault(cfg.OpenAIModel, defaultOpenAIModel),
				canListModels: true,
			}.construct(verify, timeout),
		},
		{
			Name: NamePerplexity,
			Construct: openAICompatible{
				name:    NamePerplexity,
				baseURL: perplexityBaseURL,
				model:   orDefault(cfg.PerplexityModel, defaultPerplexityModel),
			}.construct(verify, timeout),
		},
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
