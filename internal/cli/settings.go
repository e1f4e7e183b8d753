package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/HinataHamura/ai-reality-engine/internal/model"
)

// applyLLMFlags builds the effective config with CLI flag overrides applied
// before API keys are resolved, since the key to look up depends on the
// provider.
func applyLLMFlags(provider, modelName string) (*model.Config, error) {
	cfg := buildConfig()
	if provider != "" {
		cfg.LLM.Provider = provider
	}
	if modelName != "" {
		cfg.LLM.Model = modelName
	}
	if err := loadAPIKeys(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildConfig layers viper settings (config file + REALITY_* env) over the
// defaults. API keys are resolved separately by loadAPIKeys.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("server.addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v := viper.GetDuration("server.read_timeout"); v > 0 {
		cfg.Server.ReadTimeout = v
	}
	if v := viper.GetDuration("server.write_timeout"); v > 0 {
		cfg.Server.WriteTimeout = v
	}
	if v := viper.GetDuration("server.request_timeout"); v > 0 {
		cfg.Server.RequestTimeout = v
	}
	if v := viper.GetDuration("server.shutdown_timeout"); v > 0 {
		cfg.Server.ShutdownTimeout = v
	}
	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if v := viper.GetString("llm.base_url"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := viper.GetInt("llm.timeout"); v > 0 {
		cfg.LLM.Timeout = v
	}
	if v := viper.GetInt("llm.max_tokens"); v > 0 {
		cfg.LLM.MaxTokens = v
	}
	if viper.IsSet("llm.temperature") {
		cfg.LLM.Temperature = float32(viper.GetFloat64("llm.temperature"))
	}
	if v := viper.GetInt("search.max_results"); v > 0 {
		cfg.Search.MaxResults = v
	}
	if v := viper.GetDuration("search.timeout"); v > 0 {
		cfg.Search.Timeout = v
	}
	if v := viper.GetDuration("search.cache_ttl"); v > 0 {
		cfg.Search.CacheTTL = v
	}
	if v := viper.GetFloat64("search.requests_per_second"); v > 0 {
		cfg.Search.RequestsPerSecond = v
	}
	if v := viper.GetInt("search.burst"); v > 0 {
		cfg.Search.Burst = v
	}
	if v := viper.GetInt("concurrency.claim_workers"); v > 0 {
		cfg.Concurrency.ClaimWorkers = v
	}
	if v := viper.GetString("log.level"); v != "" {
		cfg.Log.Level = v
	}
	if v := viper.GetString("log.file"); v != "" {
		cfg.Log.File = v
	}

	return cfg
}

// loadAPIKeys pulls provider credentials from the environment.
// The default provider is Groq's OpenAI-compatible endpoint, so both
// GROQ_API_KEY and OPENAI_API_KEY are accepted for it.
func loadAPIKeys(cfg *model.Config) error {
	switch cfg.LLM.Provider {
	case "openai", "groq":
		cfg.LLM.APIKey = os.Getenv("GROQ_API_KEY")
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY or OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	cfg.Search.TavilyAPIKey = os.Getenv("TAVILY_API_KEY")
	return nil
}
