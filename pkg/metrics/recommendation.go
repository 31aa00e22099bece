package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of recommendation requests, by mode (similar, cart, trending)
	RecommendLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of recommendation requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation requests",
	}, []string{"mode"})

	RecommendCache = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_cache_lookups_total",
		Help: "Recommendation cache lookups by mode and result (hit, miss, error)",
	}, []string{"mode", "result"})

	// Size of the candidate pool scored per request
	CandidatePoolSize = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recommend_candidate_pool_size",
		Help:    "Number of candidates scored per recommendation request",
		Buckets: []float64{0, 10, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"mode"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		RecommendCache,
		CandidatePoolSize,
	)
}
