package llm

import "testing"

func TestNewProvider_UnknownProviderIsError(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "palantir"}); err == nil {
		t.Fatal("Expected error for unknown provider")
	}
}

func TestNewProvider_OpenAIRequiresAPIKey(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Fatal("Expected error for missing API key")
	}
}

func TestNewProvider_GroqAliasUsesOpenAIClient(t *testing.T) {
	p, err := NewProvider(Config{Provider: "groq", APIKey: "gsk-test", BaseURL: "https://api.groq.com/openai/v1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Expected openai-compatible provider, got %q", p.Name())
	}
}

func TestNewProvider_AnthropicRequiresAPIKey(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "anthropic"}); err == nil {
		t.Fatal("Expected error for missing API key")
	}
}

func TestNewProvider_OllamaNeedsNoKey(t *testing.T) {
	p, err := NewProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Expected ollama provider, got %q", p.Name())
	}
}
