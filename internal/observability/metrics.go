package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the travel API.
type Metrics struct {
	QueriesClassified *prometheus.CounterVec // labels: kind={destination,safety,invalid}
	Resolutions       *prometheus.CounterVec // labels: source={catalog,synthesized}
	LiveCache         *prometheus.CounterVec // labels: result={hit,miss}
	AssistantRequests *prometheus.CounterVec // labels: outcome={success,error,unconfigured}
	LiveFetchDuration prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.QueriesClassified,
		m.Resolutions,
		m.LiveCache,
		m.LiveFetchDuration,
		m.AssistantRequests,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		QueriesClassified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "travelsafe",
			Name:      "queries_classified_total",
			Help:      "Search queries classified, by resulting kind.",
		}, []string{"kind"}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "travelsafe",
			Name:      "destination_resolutions_total",
			Help:      "Destinations returned by search, by source.",
		}, []string{"source"}),
		LiveCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "travelsafe",
			Name:      "live_cache_total",
			Help:      "Live report cache lookups by result.",
		}, []string{"result"}),
		LiveFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "travelsafe",
			Name:      "live_fetch_duration_seconds",
			Help:      "Duration of a full live data fan-out.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		AssistantRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "travelsafe",
			Name:      "assistant_requests_total",
			Help:      "Chat assistant requests by outcome.",
		}, []string{"outcome"}),
	}
}
