package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/neexbeast/travelsafe/internal/api"
	"github.com/neexbeast/travelsafe/internal/assistant"
	"github.com/neexbeast/travelsafe/internal/cache"
	"github.com/neexbeast/travelsafe/internal/config"
	"github.com/neexbeast/travelsafe/internal/destination"
	"github.com/neexbeast/travelsafe/internal/observability"
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	log := observability.NewLogger(cfg)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx := context.Background()

	// Connect to Redis.
	redisClient, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	if cfg.OpenWeatherAPIKey == "" {
		log.Warn("OPENWEATHER_API_KEY not set, live weather will be unavailable")
	}
	if cfg.NewsAPIKey == "" {
		log.Warn("NEWS_API_KEY not set, live news will be unavailable")
	}

	// The assistant is optional; without a key the chat routes answer 503.
	var chat api.ChatAssistant
	bot, err := assistant.New(ctx, cfg.AssistantProvider, cfg.AssistantAPIKey(), cfg.AssistantModel)
	switch {
	case errors.Is(err, assistant.ErrNotConfigured):
		log.Warn("assistant disabled: no API key for provider", "provider", cfg.AssistantProvider)
	case err != nil:
		return fmt.Errorf("creating assistant: %w", err)
	default:
		defer func() { _ = bot.Close() }()
		chat = bot
		log.Info("assistant enabled", "provider", cfg.AssistantProvider)
	}

	// Wire dependencies.
	metrics := observability.NewMetrics()
	cacheLayer := cache.NewCacheWithTTL(redisClient, cfg.CacheTTL)
	fetcher := destination.NewFetcher(cfg.OpenWeatherAPIKey, cfg.NewsAPIKey)
	handlers := api.NewHandlers(cacheLayer, fetcher, destination.NewSynthesizer(), chat, metrics, log)

	router := api.NewRouter(handlers, cacheLayer, cfg.RateLimitPerMinute, log)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}
