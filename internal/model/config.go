package model

import "time"

// Config holds the full engine configuration
type Config struct {
	Server      ServerConfig      `yaml:"server" json:"server"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Search      SearchConfig      `yaml:"search" json:"search"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Log         LogConfig         `yaml:"log" json:"log"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Addr            string        `yaml:"addr" json:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" json:"write_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout" json:"request_timeout"` // Per /verify request, covers all external calls
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// LLMConfig configures the hosted LLM provider
type LLMConfig struct {
	Provider    string  `yaml:"provider" json:"provider"` // openai, anthropic, ollama
	Model       string  `yaml:"model" json:"model"`
	APIKey      string  `yaml:"-" json:"-"` // From environment only, never serialized
	BaseURL     string  `yaml:"base_url" json:"base_url"`
	Timeout     int     `yaml:"timeout" json:"timeout"` // Seconds
	MaxTokens   int     `yaml:"max_tokens" json:"max_tokens"`
	Temperature float32 `yaml:"temperature" json:"temperature"`
}

// SearchConfig configures evidence retrieval
type SearchConfig struct {
	TavilyAPIKey      string        `yaml:"-" json:"-"` // From environment only
	MaxResults        int           `yaml:"max_results" json:"max_results"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout"`
	CacheTTL          time.Duration `yaml:"cache_ttl" json:"cache_ttl"`
	RequestsPerSecond float64       `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int           `yaml:"burst" json:"burst"`
}

// ConcurrencyConfig bounds parallel per-claim work
type ConcurrencyConfig struct {
	ClaimWorkers int `yaml:"claim_workers" json:"claim_workers"`
}

// LogConfig configures structured logging
type LogConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    5 * time.Minute,
			RequestTimeout:  4 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
		},
		LLM: LLMConfig{
			Provider:    "openai",
			Model:       "llama-3.3-70b-versatile",
			BaseURL:     "https://api.groq.com/openai/v1",
			Timeout:     60,
			MaxTokens:   1024,
			Temperature: 0.1,
		},
		Search: SearchConfig{
			MaxResults:        5,
			Timeout:           20 * time.Second,
			CacheTTL:          15 * time.Minute,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Concurrency: ConcurrencyConfig{
			ClaimWorkers: 4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
