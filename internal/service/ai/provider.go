package ai

import (
	"context"
	"errors"
)

const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
	ProviderGemini     = "gemini"
)

var (
	ErrMissingAPIKey   = errors.New("api key is required")
	ErrMissingModel    = errors.New("model is required")
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingBaseURL  = errors.New("base url is required for compatible provider")
	ErrEmptyResponse   = errors.New("empty response")
)

// Provider is a remote text model able to answer one prompt at a time.
type Provider interface {
	Name() string
	// Test sends a short probe and returns whatever the model answered.
	Test(ctx context.Context) (string, error)
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
}

// Config selects and configures a Provider.
type Config struct {
	Provider        string
	APIKey          string
	BaseURL         string
	Model           string
	Endpoint        string // openai only: "responses" or "chat/completions"
	Thinking        bool
	ReasoningEffort string
	MaxTokens       int64
}

// NewProvider builds the provider named by cfg.Provider. An empty provider
// means OpenAI.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI, "":
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Endpoint, cfg.Thinking, cfg.ReasoningEffort)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens)
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderGemini:
		return NewGeminiProvider(context.Background(), cfg.APIKey, cfg.BaseURL, cfg.Model)
	default:
		return nil, ErrInvalidProvider
	}
}

// IsValidProvider reports whether name can be passed to NewProvider.
func IsValidProvider(name string) bool {
	switch name {
	case ProviderOpenAI, ProviderAnthropic, ProviderCompatible, ProviderGemini:
		return true
	}
	return false
}
