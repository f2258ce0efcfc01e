package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds and returns the Chi router with all routes configured.
// Rate limiting is applied globally per IP; /metrics sits outside the limiter.
func NewRouter(handlers *Handlers, redisClient redisPinger, ratePerMinute int, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(log))

	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(ratePerMinute, time.Minute))

		r.Get("/api/v1/health", HealthHandlerFunc(redisClient, log))

		r.Get("/api/v1/destinations", handlers.ListDestinations)
		r.Get("/api/v1/destinations/{id}", handlers.GetDestination)
		r.Get("/api/v1/search", handlers.Search)
		r.Get("/api/v1/suggestions", handlers.Suggestions)
		r.Get("/api/v1/environment/{location}", handlers.GetEnvironment)
		r.Get("/api/v1/live/{location}", handlers.GetLive)

		r.Post("/api/v1/chat", handlers.Chat)
		r.Get("/api/v1/chat/greeting", handlers.ChatGreeting)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
