// ABOUTME: Prometheus metrics for the recommendation core and HTTP API
// ABOUTME: Counters for requests and embedding usage, gauge for fallback mode
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationRequests counts recommendation requests by outcome
	// (success, invalid_argument, internal_error).
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travel_recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"outcome"},
	)

	// SimilarityRequests counts similar-destination requests by outcome
	// (success, no_match, internal_error).
	SimilarityRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travel_similarity_requests_total",
			Help: "Total number of similar-destination requests",
		},
		[]string{"outcome"},
	)

	// SimilarityFallbackActive is 1 when the similarity engine is using
	// the category-overlap fallback instead of embeddings.
	SimilarityFallbackActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "travel_similarity_fallback_active",
			Help: "Whether similarity is using the category-overlap fallback (1) or embeddings (0)",
		},
	)

	// EmbeddingProducerCalls counts individual embedding requests made to
	// the producer. At most one per destination per process lifetime.
	EmbeddingProducerCalls = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "travel_embedding_producer_calls_total",
			Help: "Total number of embedding producer invocations",
		},
	)

	// APIRequestDuration tracks HTTP API latency.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "travel_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)
)
