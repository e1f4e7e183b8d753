package llm

import (
	"context"

	"github.com/HinataHamura/ai-reality-engine/internal/model"
)

// Provider defines the interface for hosted LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a system+user prompt pair and returns the raw completion
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for one completion call
type CompletionRequest struct {
	// System is the system prompt (role instruction)
	System string

	// User is the user prompt (task payload)
	User string

	// Model overrides the configured model (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature controls sampling; pipeline stages use a low value
	Temperature float32
}

// CompletionResponse contains the model's output
type CompletionResponse struct {
	// Content is the raw completion text
	Content string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI-compatible/Anthropic endpoints
	APIKey string

	// BaseURL for custom endpoints (Groq, Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Temperature for sampling
	Temperature float32
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:    "openai",
		Model:       "llama-3.3-70b-versatile",
		BaseURL:     "https://api.groq.com/openai/v1",
		Timeout:     60,
		MaxTokens:   1024,
		Temperature: 0.1,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:    mc.Provider,
		Model:       mc.Model,
		APIKey:      mc.APIKey,
		BaseURL:     mc.BaseURL,
		Timeout:     mc.Timeout,
		MaxTokens:   mc.MaxTokens,
		Temperature: mc.Temperature,
	}
}
