package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Equal(t, "gemini", cfg.AssistantProvider)
	assert.Empty(t, cfg.AssistantModel)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("OPENWEATHER_API_KEY", "ow-key")
	t.Setenv("NEWS_API_KEY", "news-key")
	t.Setenv("ASSISTANT_PROVIDER", "OpenAI")
	t.Setenv("ASSISTANT_MODEL", "gpt-4o")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "redis://cache:6379/2", cfg.RedisURL)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, "ow-key", cfg.OpenWeatherAPIKey)
	assert.Equal(t, "news-key", cfg.NewsAPIKey)
	assert.Equal(t, "openai", cfg.AssistantProvider)
	assert.Equal(t, "gpt-4o", cfg.AssistantModel)
	assert.Equal(t, "sk-test", cfg.AssistantAPIKey())
}

func TestAssistantAPIKey_Gemini(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "g-key", cfg.AssistantAPIKey())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad shutdown timeout", "SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"negative shutdown timeout", "SHUTDOWN_TIMEOUT", "-1s"},
		{"bad cache ttl", "CACHE_TTL", "forever"},
		{"zero rate limit", "RATE_LIMIT_PER_MINUTE", "0"},
		{"non-numeric rate limit", "RATE_LIMIT_PER_MINUTE", "lots"},
		{"unknown provider", "ASSISTANT_PROVIDER", "parrot"},
		{"unknown log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
