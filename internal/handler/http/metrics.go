package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/siawash1991/my-website/internal/handler/http/pathutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Buckets cover fast cached reads up to pathological multi-second writes,
	// which keeps p95/p99 readable.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	httpRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// Business metrics: current size of each collection.
	postsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "posts_total",
			Help: "Total number of blog posts in the database",
		},
	)

	podcastsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "podcasts_total",
			Help: "Total number of podcast episodes in the database",
		},
	)

	startupsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "startups_total",
			Help: "Total number of startup profiles in the database",
		},
	)
)

// responseWriter wraps http.ResponseWriter to record status code and response size.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// MetricsMiddleware records HTTP request metrics: in-flight gauge, duration,
// request/response sizes and status code distribution. Paths are normalized
// (/api/posts/<uuid> -> /api/posts/:id) to keep label cardinality bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		normalizedPath := pathutil.NormalizePath(r.URL.Path)

		if r.ContentLength > 0 {
			httpRequestSize.WithLabelValues(r.Method, normalizedPath).Observe(float64(r.ContentLength))
		}

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		start := time.Now()
		next.ServeHTTP(rw, r)
		duration := time.Since(start).Seconds()

		status := strconv.Itoa(rw.statusCode)
		httpRequestsTotal.WithLabelValues(r.Method, normalizedPath, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, normalizedPath, status).Observe(duration)
		httpResponseSize.WithLabelValues(r.Method, normalizedPath).Observe(float64(rw.size))
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// UpdatePostsTotal updates the total count of posts in the database.
func UpdatePostsTotal(count int) {
	postsTotal.Set(float64(count))
}

// UpdatePodcastsTotal updates the total count of podcast episodes.
func UpdatePodcastsTotal(count int) {
	podcastsTotal.Set(float64(count))
}

// UpdateStartupsTotal updates the total count of startup profiles.
func UpdateStartupsTotal(count int) {
	startupsTotal.Set(float64(count))
}
