package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// authRequestsTotal counts authentication activity by endpoint and result.
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Authentication requests by endpoint and result",
		},
		[]string{"endpoint", "result"}, // result: success | failure | error
	)

	// authCheckDuration tracks how long the session gate takes per request.
	authCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "auth_check_duration_seconds",
			Help:    "Session gate check duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// loginThrottledTotal counts logins rejected by the per-IP rate limit.
	loginThrottledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "login_throttled_total",
			Help: "Login attempts rejected by rate limiting",
		},
	)

	// sessionsPrunedTotal counts expired sessions removed by the maintenance job.
	sessionsPrunedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_pruned_total",
			Help: "Expired sessions removed by the pruning job",
		},
	)
)

// RecordAuthRequest records an authentication request outcome.
func RecordAuthRequest(endpoint, result string) {
	authRequestsTotal.WithLabelValues(endpoint, result).Inc()
}

// RecordAuthCheckDuration records a session gate check duration.
func RecordAuthCheckDuration(durationSeconds float64) {
	authCheckDuration.Observe(durationSeconds)
}

// RecordLoginThrottled records a login rejected by the rate limiter.
func RecordLoginThrottled() {
	loginThrottledTotal.Inc()
}

// RecordSessionsPruned records expired sessions removed by the pruning job.
func RecordSessionsPruned(count int64) {
	sessionsPrunedTotal.Add(float64(count))
}
