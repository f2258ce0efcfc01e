package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/miyamo2/qilin"

	"github.com/neexbeast/travelsafe/internal/config"
	"github.com/neexbeast/travelsafe/internal/destination"
	"github.com/neexbeast/travelsafe/internal/mcptools"
	"github.com/neexbeast/travelsafe/internal/observability"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	// stdout carries the MCP stream, so logs go to stderr.
	log := observability.NewLoggerTo(os.Stderr, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	q := mcptools.NewServer("travelsafe", destination.NewSynthesizer())

	log.Info("mcp server starting on stdio")
	if err := q.Start(qilin.StartWithContext(ctx)); err != nil {
		log.Error("mcp server exited with error", "err", err)
		os.Exit(1)
	}
	log.Info("mcp server stopped")
}
