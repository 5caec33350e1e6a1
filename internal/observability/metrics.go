package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreErrorRate counts persistent store errors by backend and operation.
	StoreErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soulshub_store_error_rate_total",
		Help: "Total number of persistent store errors by backend and operation",
	}, []string{"backend", "operation"})

	// StoreOperationLatency records store operation latency by backend and operation.
	StoreOperationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "soulshub_store_operation_latency_seconds",
		Help:    "Persistent store operation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend", "operation"})

	// GatewayRequests counts AI gateway calls by operation and outcome
	// (ok, fallback, error).
	GatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soulshub_ai_gateway_requests_total",
		Help: "Total AI gateway calls by operation and outcome",
	}, []string{"operation", "outcome"})

	// GatewayLatency records AI gateway call latency by operation.
	GatewayLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "soulshub_ai_gateway_latency_seconds",
		Help:    "AI gateway call latency in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"operation"})

	// FeedInteractions counts community feed interactions by kind
	// (post, comment, like, love, share, pray).
	FeedInteractions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soulshub_feed_interactions_total",
		Help: "Total community feed interactions by kind",
	}, []string{"kind"})

	// SeedRuns counts community seeding attempts by outcome.
	SeedRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soulshub_seed_runs_total",
		Help: "Total community seeding attempts by outcome",
	}, []string{"outcome"})

	// AdminLogins counts admin gate attempts by outcome.
	AdminLogins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soulshub_admin_logins_total",
		Help: "Total admin gate attempts by outcome",
	}, []string{"outcome"})
)

// TrackStoreOperation returns a function that records store operation latency
// when called (e.g. defer).
func TrackStoreOperation(backend, operation string) func() {
	start := time.Now()
	return func() {
		StoreOperationLatency.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
	}
}

// ObserveGatewayCall records latency and outcome for an AI gateway call.
func ObserveGatewayCall(operation, outcome string, start time.Time) {
	GatewayLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	GatewayRequests.WithLabelValues(operation, outcome).Inc()
}
