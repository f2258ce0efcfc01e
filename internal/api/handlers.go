package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/neexbeast/travelsafe/internal/assistant"
	"github.com/neexbeast/travelsafe/internal/destination"
	"github.com/neexbeast/travelsafe/internal/observability"
	"github.com/neexbeast/travelsafe/internal/query"
)

// maxChatBody caps the size of a chat request body.
const maxChatBody = 16 << 10

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	cache   LiveCache
	fetcher LiveFetcher
	synth   ContentSynthesizer
	chat    ChatAssistant
	metrics *observability.Metrics
	log     *slog.Logger
}

// NewHandlers constructs Handlers. chat may be nil when no assistant
// provider is configured; the chat routes then answer 503.
func NewHandlers(cache LiveCache, fetcher LiveFetcher, synth ContentSynthesizer, chat ChatAssistant, metrics *observability.Metrics, log *slog.Logger) *Handlers {
	return &Handlers{
		cache:   cache,
		fetcher: fetcher,
		synth:   synth,
		chat:    chat,
		metrics: metrics,
		log:     log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// pathParam returns the unescaped value of a chi URL parameter.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(raw)
}

// ListDestinations handles GET /api/v1/destinations.
func (h *Handlers) ListDestinations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, destination.Catalog())
}

type destinationDetail struct {
	Destination destination.Destination   `json:"destination"`
	Safety      destination.SafetyProfile `json:"safety"`
	Advice      destination.Advice        `json:"advice"`
}

// GetDestination handles GET /api/v1/destinations/{id}.
func (h *Handlers) GetDestination(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")

	d, ok := destination.Lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, "destination not found")
		return
	}

	writeJSON(w, http.StatusOK, destinationDetail{
		Destination: d,
		Safety:      h.synth.Profile(d),
		Advice:      destination.Advise(d),
	})
}

type searchResponse struct {
	Kind         query.Kind                `json:"kind"`
	Query        string                    `json:"query"`
	Location     string                    `json:"location,omitempty"`
	Destinations []destination.Destination `json:"destinations"`
	Advice       *destination.Advice       `json:"advice,omitempty"`
}

// Search handles GET /api/v1/search?q=.
// Destination queries resolve the query text; safety questions resolve the
// location they name and attach advice for the best match.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("q")

	c, err := query.Classify(raw)
	h.metrics.QueriesClassified.WithLabelValues(string(c.Kind)).Inc()
	if err != nil {
		var ve *query.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
				"error":  ve.Error(),
				"reason": string(ve.Reason),
			})
			return
		}
		h.log.Error("classify failed", "query", raw, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	target := c.NormalizedQuery
	if c.Kind == query.KindSafety && c.LocationHint != "" {
		target = c.LocationHint
	}

	results := destination.Resolve(target)
	names := make([]string, 0, len(results))
	for _, d := range results {
		names = append(names, d.Name)
		source := "catalog"
		if destination.IsSynthesized(d) {
			source = "synthesized"
		}
		h.metrics.Resolutions.WithLabelValues(source).Inc()
	}

	resp := searchResponse{
		Kind:         c.Kind,
		Query:        c.NormalizedQuery,
		Location:     query.PrimaryLocationName(c.NormalizedQuery, names),
		Destinations: results,
	}
	if c.Kind == query.KindSafety && len(results) > 0 {
		advice := destination.Advise(results[0])
		resp.Advice = &advice
	}

	writeJSON(w, http.StatusOK, resp)
}

type environmentResponse struct {
	Location string `json:"location"`
	destination.Environment
}

// GetEnvironment handles GET /api/v1/environment/{location}.
func (h *Handlers) GetEnvironment(w http.ResponseWriter, r *http.Request) {
	location := pathParam(r, "location")
	if location == "" {
		writeError(w, http.StatusBadRequest, "location is required")
		return
	}

	writeJSON(w, http.StatusOK, environmentResponse{
		Location:    location,
		Environment: h.synth.Environment(location),
	})
}

// Suggestions handles GET /api/v1/suggestions?q=.
func (h *Handlers) Suggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, destination.Suggest(r.URL.Query().Get("q")))
}

// GetLive handles GET /api/v1/live/{location}?country=.
// Cache hit → return. Miss → fetch all upstreams, cache, return.
func (h *Handlers) GetLive(w http.ResponseWriter, r *http.Request) {
	location := pathParam(r, "location")
	if location == "" {
		writeError(w, http.StatusBadRequest, "location is required")
		return
	}

	cached, err := h.cache.Get(r.Context(), location)
	if err != nil {
		h.log.Error("cache get failed", "location", location, "err", err)
	}
	if cached != nil {
		h.metrics.LiveCache.WithLabelValues("hit").Inc()
		writeJSON(w, http.StatusOK, cached)
		return
	}
	h.metrics.LiveCache.WithLabelValues("miss").Inc()

	timer := prometheus.NewTimer(h.metrics.LiveFetchDuration)
	report, err := h.fetcher.FetchAll(r.Context(), location, r.URL.Query().Get("country"))
	timer.ObserveDuration()
	if errors.Is(err, destination.ErrNoLiveData) {
		h.log.Warn("no live data", "location", location)
		writeError(w, http.StatusBadGateway, "live data is unavailable")
		return
	}
	if err != nil {
		h.log.Error("fetch all failed", "location", location, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch live data")
		return
	}

	if err := h.cache.Set(r.Context(), location, report); err != nil {
		h.log.Warn("cache set failed after fetch", "location", location, "err", err)
	}

	writeJSON(w, http.StatusOK, report)
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat handles POST /api/v1/chat.
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	if h.chat == nil {
		h.metrics.AssistantRequests.WithLabelValues("unconfigured").Inc()
		writeError(w, http.StatusServiceUnavailable, "assistant is not configured")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	msg, err := h.chat.Reply(r.Context(), req.Message)
	if err != nil {
		h.metrics.AssistantRequests.WithLabelValues("error").Inc()
		if errors.Is(err, assistant.ErrEmptyPrompt) {
			writeError(w, http.StatusBadRequest, "message is required")
			return
		}
		h.log.Error("assistant reply failed", "err", err)
		writeError(w, http.StatusBadGateway, "assistant is unavailable, please try again later")
		return
	}

	h.metrics.AssistantRequests.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, msg)
}

// ChatGreeting handles GET /api/v1/chat/greeting.
func (h *Handlers) ChatGreeting(w http.ResponseWriter, _ *http.Request) {
	if h.chat == nil {
		writeError(w, http.StatusServiceUnavailable, "assistant is not configured")
		return
	}
	writeJSON(w, http.StatusOK, h.chat.Greeting())
}

type redisPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks redis connectivity.
// It answers 200 when redis is reachable and 503 otherwise.
func HealthHandlerFunc(redis redisPinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		overall := "ok"
		redisStatus := "ok"

		if err := redis.Ping(ctx); err != nil {
			log.Error("health check: redis ping failed", "err", err)
			redisStatus = "error"
			overall = "degraded"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"redis":  redisStatus,
		})
	}
}
