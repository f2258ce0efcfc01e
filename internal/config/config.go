package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	RedisURL string
	CacheTTL time.Duration

	RateLimitPerMinute int

	// Live data providers.
	OpenWeatherAPIKey string
	NewsAPIKey        string

	// Chat assistant.
	AssistantProvider string
	AssistantModel    string
	GeminiAPIKey      string
	OpenAIAPIKey      string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}

	cacheTTL, err := parseDuration("CACHE_TTL", "1h")
	if err != nil {
		return nil, err
	}

	rateLimit, err := parsePositiveInt("RATE_LIMIT_PER_MINUTE", 60)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:           envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           envOrDefault("LOG_LEVEL", "info"),
		LogFormat:          envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		RedisURL:           envOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		CacheTTL:           cacheTTL,
		RateLimitPerMinute: rateLimit,
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		NewsAPIKey:         os.Getenv("NEWS_API_KEY"),
		AssistantProvider:  strings.ToLower(envOrDefault("ASSISTANT_PROVIDER", "gemini")),
		AssistantModel:     os.Getenv("ASSISTANT_MODEL"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
	}

	if cfg.AssistantProvider != "gemini" && cfg.AssistantProvider != "openai" {
		return nil, fmt.Errorf("invalid ASSISTANT_PROVIDER %q: must be gemini or openai", cfg.AssistantProvider)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, errors.New("invalid LOG_FORMAT: must be json or text")
	}

	return cfg, nil
}

// AssistantAPIKey returns the key for the configured assistant provider.
func (c *Config) AssistantAPIKey() string {
	if c.AssistantProvider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer", key)
	}
	return n, nil
}
