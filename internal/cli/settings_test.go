package cli

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestBuildConfig_DefaultsWhenViperEmpty(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg := buildConfig()

	if cfg.Server.Addr != ":8000" {
		t.Errorf("Expected default addr :8000, got %q", cfg.Server.Addr)
	}
	if cfg.LLM.Temperature != 0.1 {
		t.Errorf("Expected default temperature 0.1, got %v", cfg.LLM.Temperature)
	}
	if cfg.Search.RequestsPerSecond != 2 {
		t.Errorf("Expected default rps 2, got %v", cfg.Search.RequestsPerSecond)
	}
}

func TestBuildConfig_ReadsAllSettingsKeys(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("server.addr", ":9090")
	viper.Set("server.read_timeout", "30s")
	viper.Set("server.write_timeout", "2m")
	viper.Set("server.request_timeout", "90s")
	viper.Set("server.shutdown_timeout", "5s")
	viper.Set("llm.provider", "ollama")
	viper.Set("llm.model", "llama3")
	viper.Set("llm.base_url", "http://localhost:11434")
	viper.Set("llm.timeout", 30)
	viper.Set("llm.max_tokens", 512)
	viper.Set("llm.temperature", 0.7)
	viper.Set("search.max_results", 8)
	viper.Set("search.timeout", "10s")
	viper.Set("search.cache_ttl", "5m")
	viper.Set("search.requests_per_second", 1.5)
	viper.Set("search.burst", 3)
	viper.Set("concurrency.claim_workers", 2)
	viper.Set("log.level", "debug")

	cfg := buildConfig()

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Expected addr :9090, got %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Expected read timeout 30s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 2*time.Minute {
		t.Errorf("Expected write timeout 2m, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.Server.RequestTimeout != 90*time.Second {
		t.Errorf("Expected request timeout 90s, got %v", cfg.Server.RequestTimeout)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("Expected shutdown timeout 5s, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.LLM.Provider != "ollama" {
		t.Errorf("Expected provider ollama, got %q", cfg.LLM.Provider)
	}
	if cfg.LLM.Temperature != 0.7 {
		t.Errorf("Expected temperature 0.7, got %v", cfg.LLM.Temperature)
	}
	if cfg.Search.Timeout != 10*time.Second {
		t.Errorf("Expected search timeout 10s, got %v", cfg.Search.Timeout)
	}
	if cfg.Search.RequestsPerSecond != 1.5 {
		t.Errorf("Expected rps 1.5, got %v", cfg.Search.RequestsPerSecond)
	}
	if cfg.Search.Burst != 3 {
		t.Errorf("Expected burst 3, got %d", cfg.Search.Burst)
	}
	if cfg.Concurrency.ClaimWorkers != 2 {
		t.Errorf("Expected 2 claim workers, got %d", cfg.Concurrency.ClaimWorkers)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %q", cfg.Log.Level)
	}
}

func TestBuildConfig_ZeroTemperatureOverridesDefault(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("llm.temperature", 0.0)

	cfg := buildConfig()
	if cfg.LLM.Temperature != 0 {
		t.Errorf("Expected explicit temperature 0, got %v", cfg.LLM.Temperature)
	}
}
