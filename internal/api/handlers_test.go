package api_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/travelsafe/internal/api"
	"github.com/neexbeast/travelsafe/internal/assistant"
	"github.com/neexbeast/travelsafe/internal/destination"
	"github.com/neexbeast/travelsafe/internal/observability"
)

// ---- mock implementations ----

type mockCache struct {
	getFn func(ctx context.Context, location string) (*destination.LiveReport, error)
	setFn func(ctx context.Context, location string, report *destination.LiveReport) error
}

func (m *mockCache) Get(ctx context.Context, location string) (*destination.LiveReport, error) {
	return m.getFn(ctx, location)
}
func (m *mockCache) Set(ctx context.Context, location string, report *destination.LiveReport) error {
	return m.setFn(ctx, location, report)
}

type mockFetcher struct {
	fetchAllFn func(ctx context.Context, location, country string) (*destination.LiveReport, error)
}

func (m *mockFetcher) FetchAll(ctx context.Context, location, country string) (*destination.LiveReport, error) {
	return m.fetchAllFn(ctx, location, country)
}

type mockSynth struct{}

func (mockSynth) Environment(name string) destination.Environment {
	return destination.Environment{
		Weather: destination.WeatherSnapshot{Condition: destination.Sunny, Temperature: 21},
		Alerts:  destination.Alerts(name),
		Tips:    destination.Tips(name),
	}
}

func (mockSynth) Profile(d destination.Destination) destination.SafetyProfile {
	return destination.SafetyProfile{Crime: 8, Health: 9, Environment: 7, Overall: d.SafetyScore}
}

type mockAssistant struct {
	replyFn func(ctx context.Context, prompt string) (assistant.Message, error)
}

func (m *mockAssistant) Reply(ctx context.Context, prompt string) (assistant.Message, error) {
	return m.replyFn(ctx, prompt)
}
func (m *mockAssistant) Greeting() assistant.Message {
	return assistant.Message{ID: "greet", Content: "Hello!", Sender: assistant.SenderAI}
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// ---- helpers ----

type routerOpts struct {
	cache     api.LiveCache
	fetcher   api.LiveFetcher
	chat      api.ChatAssistant
	redis     *mockPinger
	rateLimit int
	metrics   *observability.Metrics
}

func sampleReport() *destination.LiveReport {
	return &destination.LiveReport{
		Weather: &destination.LiveWeather{Condition: "Clear", Temperature: 22},
	}
}

func nopCache() *mockCache {
	return &mockCache{
		getFn: func(_ context.Context, _ string) (*destination.LiveReport, error) { return nil, nil },
		setFn: func(_ context.Context, _ string, _ *destination.LiveReport) error { return nil },
	}
}

func nopFetcher() *mockFetcher {
	return &mockFetcher{
		fetchAllFn: func(_ context.Context, _, _ string) (*destination.LiveReport, error) { return sampleReport(), nil },
	}
}

func buildRouter(opts routerOpts) http.Handler {
	if opts.cache == nil {
		opts.cache = nopCache()
	}
	if opts.fetcher == nil {
		opts.fetcher = nopFetcher()
	}
	if opts.redis == nil {
		opts.redis = &mockPinger{}
	}
	if opts.rateLimit == 0 {
		opts.rateLimit = 1000
	}
	if opts.metrics == nil {
		opts.metrics = observability.NewMetricsForTesting()
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	handlers := api.NewHandlers(opts.cache, opts.fetcher, mockSynth{}, opts.chat, opts.metrics, log)
	return api.NewRouter(handlers, opts.redis, opts.rateLimit, log)
}

func do(t *testing.T, router http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ---- GET /api/v1/destinations ----

func TestListDestinations(t *testing.T) {
	w := do(t, buildRouter(routerOpts{}), http.MethodGet, "/api/v1/destinations", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []destination.Destination
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Len(t, got, len(destination.Catalog()))
	assert.Equal(t, "Barcelona, Spain", got[0].Name)
}

// ---- GET /api/v1/destinations/{id} ----

func TestGetDestination_Found(t *testing.T) {
	w := do(t, buildRouter(routerOpts{}), http.MethodGet, "/api/v1/destinations/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Destination destination.Destination   `json:"destination"`
		Safety      destination.SafetyProfile `json:"safety"`
		Advice      destination.Advice        `json:"advice"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "Barcelona, Spain", got.Destination.Name)
	assert.InDelta(t, 8.5, got.Safety.Overall, 0.001)
	assert.Equal(t, destination.LevelVerySafe, got.Advice.Level)
	assert.Contains(t, got.Advice.Summary, "Barcelona")
}

func TestGetDestination_NotFound(t *testing.T) {
	w := do(t, buildRouter(routerOpts{}), http.MethodGet, "/api/v1/destinations/search-unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ---- GET /api/v1/search ----

type searchBody struct {
	Kind         string                    `json:"kind"`
	Query        string                    `json:"query"`
	Location     string                    `json:"location"`
	Destinations []destination.Destination `json:"destinations"`
	Advice       *destination.Advice       `json:"advice"`
}

func TestSearch_CatalogMatches(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	w := do(t, buildRouter(routerOpts{metrics: metrics}), http.MethodGet, "/api/v1/search?q=capital", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got searchBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))

	assert.Equal(t, "destination", got.Kind)
	ids := make([]string, 0, len(got.Destinations))
	for _, d := range got.Destinations {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"3", "4", "8", "9"}, ids)
	assert.Equal(t, "Tokyo", got.Location)
	assert.Nil(t, got.Advice)

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.QueriesClassified.WithLabelValues("destination")), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(metrics.Resolutions.WithLabelValues("catalog")), 0)
}

func TestSearch_Synthesized(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	w := do(t, buildRouter(routerOpts{metrics: metrics}), http.MethodGet, "/api/v1/search?q=qwertyville", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got searchBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))

	require.Len(t, got.Destinations, 1)
	d := got.Destinations[0]
	assert.Equal(t, "Qwertyville", d.Name)
	assert.True(t, destination.IsSynthesized(d))
	assert.Equal(t, destination.SafetyScore("Qwertyville"), d.SafetyScore)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Resolutions.WithLabelValues("synthesized")), 0)
}

func TestSearch_SafetyQuestion(t *testing.T) {
	w := do(t, buildRouter(routerOpts{}), http.MethodGet, "/api/v1/search?q=Barcelona+crime+rate", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got searchBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))

	assert.Equal(t, "safety", got.Kind)
	assert.Equal(t, "Is Barcelona crime rate safe to visit?", got.Query)
	assert.Equal(t, "Barcelona", got.Location)
	require.NotEmpty(t, got.Destinations)
	assert.Equal(t, "1", got.Destinations[0].ID)
	require.NotNil(t, got.Advice)
	assert.Equal(t, destination.LevelVerySafe, got.Advice.Level)
}

func TestSearch_SafetyQuestionAboutRegion(t *testing.T) {
	tests := []struct {
		q    string
		want string
	}{
		{"is+asia+safe%3F", "Asia"},
		{"is+africa+dangerous", "Africa"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			w := do(t, buildRouter(routerOpts{}), http.MethodGet, "/api/v1/search?q="+tt.q, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			var got searchBody
			require.NoError(t, json.NewDecoder(w.Body).Decode(&got))

			assert.Equal(t, "safety", got.Kind)
			assert.Equal(t, tt.want, got.Location)
			require.Len(t, got.Destinations, 1)
			assert.Equal(t, tt.want, got.Destinations[0].Name)
			assert.True(t, destination.IsSynthesized(got.Destinations[0]))
			require.NotNil(t, got.Advice)
		})
	}
}

func TestSearch_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		q      string
		reason string
	}{
		{"too short", "ab", "too_short"},
		{"mostly digits", "12345a", "too_few_letters"},
		{"repeated characters", "paaaaris", "repeated_characters"},
		{"safety without location", "is+it+safe", "missing_location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := observability.NewMetricsForTesting()
			w := do(t, buildRouter(routerOpts{metrics: metrics}), http.MethodGet, "/api/v1/search?q="+tt.q, nil)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			var body map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.reason, body["reason"])
			assert.NotEmpty(t, body["error"])
			assert.InDelta(t, 1, testutil.ToFloat64(metrics.QueriesClassified.WithLabelValues("invalid")), 0)
		})
	}
}

// ---- GET /api/v1/suggestions ----

func TestSuggestions(t *testing.T) {
	w := do(t, buildRouter(routerOpts{}), http.MethodGet, "/api/v1/suggestions?q=par", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Contains(t, got, "Paris")
	assert.LessOrEqual(t, len(got), 5)
}

func TestSuggestions_TooShort(t *testing.T) {
	w := do(t, buildRouter(routerOpts{}), http.MethodGet, "/api/v1/suggestions?q=p", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

// ---- GET /api/v1/environment/{location} ----

func TestGetEnvironment(t *testing.T) {
	w := do(t, buildRouter(routerOpts{}), http.MethodGet, "/api/v1/environment/hello", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Location string                      `json:"location"`
		Weather  destination.WeatherSnapshot `json:"weather"`
		Alerts   []destination.SafetyAlert   `json:"alerts"`
		Tips     []destination.TravelTip     `json:"tips"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "hello", got.Location)
	assert.Equal(t, destination.Sunny, got.Weather.Condition)
	assert.Equal(t, destination.Alerts("hello"), got.Alerts)
	assert.Equal(t, destination.Tips("hello"), got.Tips)
}

func TestGetEnvironment_EscapedLocation(t *testing.T) {
	w := do(t, buildRouter(routerOpts{}), http.MethodGet, "/api/v1/environment/New%20York", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "New York", got["location"])
}

// ---- GET /api/v1/live/{location} ----

func TestGetLive_CacheHit(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	cache := &mockCache{
		getFn: func(_ context.Context, _ string) (*destination.LiveReport, error) { return sampleReport(), nil },
		setFn: func(_ context.Context, _ string, _ *destination.LiveReport) error {
			t.Fatal("cache.Set should not be called on hit")
			return nil
		},
	}
	fetcher := &mockFetcher{
		fetchAllFn: func(_ context.Context, _, _ string) (*destination.LiveReport, error) {
			t.Fatal("fetcher should not be called on cache hit")
			return nil, nil
		},
	}

	w := do(t, buildRouter(routerOpts{cache: cache, fetcher: fetcher, metrics: metrics}), http.MethodGet, "/api/v1/live/Lisbon", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got destination.LiveReport
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, 22, got.Weather.Temperature)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.LiveCache.WithLabelValues("hit")), 0)
}

func TestGetLive_CacheMiss_FetchesAndStores(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	var setLocation, gotCountry string
	cache := &mockCache{
		getFn: func(_ context.Context, _ string) (*destination.LiveReport, error) { return nil, nil },
		setFn: func(_ context.Context, location string, _ *destination.LiveReport) error {
			setLocation = location
			return nil
		},
	}
	fetcher := &mockFetcher{
		fetchAllFn: func(_ context.Context, _, country string) (*destination.LiveReport, error) {
			gotCountry = country
			return sampleReport(), nil
		},
	}

	w := do(t, buildRouter(routerOpts{cache: cache, fetcher: fetcher, metrics: metrics}), http.MethodGet, "/api/v1/live/Lisbon?country=Portugal", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Lisbon", setLocation)
	assert.Equal(t, "Portugal", gotCountry)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.LiveCache.WithLabelValues("miss")), 0)
}

func TestGetLive_CacheErrorFallsThrough(t *testing.T) {
	cache := &mockCache{
		getFn: func(_ context.Context, _ string) (*destination.LiveReport, error) {
			return nil, fmt.Errorf("redis down")
		},
		setFn: func(_ context.Context, _ string, _ *destination.LiveReport) error { return fmt.Errorf("redis down") },
	}

	w := do(t, buildRouter(routerOpts{cache: cache}), http.MethodGet, "/api/v1/live/Lisbon", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetLive_FetchError(t *testing.T) {
	fetcher := &mockFetcher{
		fetchAllFn: func(_ context.Context, _, _ string) (*destination.LiveReport, error) {
			return nil, fmt.Errorf("all APIs down")
		},
	}

	w := do(t, buildRouter(routerOpts{fetcher: fetcher}), http.MethodGet, "/api/v1/live/Lisbon", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetLive_NoLiveData_NotCached(t *testing.T) {
	setCalled := false
	cache := &mockCache{
		getFn: func(_ context.Context, _ string) (*destination.LiveReport, error) { return nil, nil },
		setFn: func(_ context.Context, _ string, _ *destination.LiveReport) error {
			setCalled = true
			return nil
		},
	}
	fetcher := &mockFetcher{
		fetchAllFn: func(_ context.Context, location, _ string) (*destination.LiveReport, error) {
			return nil, fmt.Errorf("fetching live data for %s: %w", location, destination.ErrNoLiveData)
		},
	}

	w := do(t, buildRouter(routerOpts{cache: cache, fetcher: fetcher}), http.MethodGet, "/api/v1/live/Lisbon", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.False(t, setCalled, "an empty report must not be cached")
}

// ---- POST /api/v1/chat ----

func chatBody(msg string) io.Reader {
	b, _ := json.Marshal(map[string]string{"message": msg})
	return bytes.NewReader(b)
}

func TestChat_Success(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	var gotPrompt string
	chat := &mockAssistant{
		replyFn: func(_ context.Context, prompt string) (assistant.Message, error) {
			gotPrompt = prompt
			return assistant.Message{ID: "m1", Content: "Stay in well-lit areas.", Sender: assistant.SenderAI, Timestamp: time.Unix(0, 0).UTC()}, nil
		},
	}

	w := do(t, buildRouter(routerOpts{chat: chat, metrics: metrics}), http.MethodPost, "/api/v1/chat", chatBody("Is Rome safe at night?"))

	assert.Equal(t, http.StatusOK, w.Code)
	var got assistant.Message
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "Stay in well-lit areas.", got.Content)
	assert.Equal(t, assistant.SenderAI, got.Sender)
	assert.Equal(t, "Is Rome safe at night?", gotPrompt)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.AssistantRequests.WithLabelValues("success")), 0)
}

func TestChat_EmptyMessage(t *testing.T) {
	chat := &mockAssistant{
		replyFn: func(_ context.Context, _ string) (assistant.Message, error) {
			t.Fatal("assistant should not be called")
			return assistant.Message{}, nil
		},
	}

	w := do(t, buildRouter(routerOpts{chat: chat}), http.MethodPost, "/api/v1/chat", chatBody("   "))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_InvalidBody(t *testing.T) {
	chat := &mockAssistant{}
	w := do(t, buildRouter(routerOpts{chat: chat}), http.MethodPost, "/api/v1/chat", bytes.NewBufferString("{not json"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_NotConfigured(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	w := do(t, buildRouter(routerOpts{metrics: metrics}), http.MethodPost, "/api/v1/chat", chatBody("hello"))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.AssistantRequests.WithLabelValues("unconfigured")), 0)
}

func TestChat_UpstreamError(t *testing.T) {
	chat := &mockAssistant{
		replyFn: func(_ context.Context, _ string) (assistant.Message, error) {
			return assistant.Message{}, fmt.Errorf("generating reply: %w", assistant.ErrEmptyResponse)
		},
	}

	w := do(t, buildRouter(routerOpts{chat: chat}), http.MethodPost, "/api/v1/chat", chatBody("Is Rome safe?"))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestChatGreeting(t *testing.T) {
	w := do(t, buildRouter(routerOpts{chat: &mockAssistant{}}), http.MethodGet, "/api/v1/chat/greeting", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got assistant.Message
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "Hello!", got.Content)
}

func TestChatGreeting_NotConfigured(t *testing.T) {
	w := do(t, buildRouter(routerOpts{}), http.MethodGet, "/api/v1/chat/greeting", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// ---- GET /api/v1/health ----

func TestHealth_OK(t *testing.T) {
	w := do(t, buildRouter(routerOpts{redis: &mockPinger{}}), http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["redis"])
}

func TestHealth_RedisDown(t *testing.T) {
	w := do(t, buildRouter(routerOpts{redis: &mockPinger{err: fmt.Errorf("redis unreachable")}}), http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "error", body["redis"])
}

// ---- middleware ----

func TestRateLimit(t *testing.T) {
	router := buildRouter(routerOpts{rateLimit: 2})

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/api/v1/destinations", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/api/v1/destinations", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, router, http.MethodGet, "/api/v1/destinations", nil).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	w := do(t, buildRouter(routerOpts{}), http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
