// Package telemetry registers the prometheus metrics for the evaluation
// daemon and provides the HTTP instrumentation middleware.
package telemetry

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	httpDur = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// Evaluations counts rule applications by outcome: "ok", or the error
	// kind that stopped them.
	Evaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jsonlogic_evaluations_total",
			Help: "Total rule evaluations by outcome",
		},
		[]string{"outcome"},
	)
	EvalDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jsonlogic_evaluation_duration_seconds",
			Help:    "Rule evaluation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
	)
	RuleCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jsonlogic_rule_cache_hits_total",
		Help: "Compiled rule cache hits",
	})
	RuleCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jsonlogic_rule_cache_misses_total",
		Help: "Compiled rule cache misses",
	})
)

func Init() {
	prometheus.MustRegister(httpReqs, httpDur, Evaluations, EvalDuration, RuleCacheHits, RuleCacheMisses)
}

// ObserveEvaluation records one rule application.
func ObserveEvaluation(outcome string, elapsed time.Duration) {
	Evaluations.WithLabelValues(outcome).Inc()
	EvalDuration.Observe(elapsed.Seconds())
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// get route pattern if available
		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}

		start := time.Now()
		ww := &statusWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(ww, r)

		httpReqs.WithLabelValues(route, r.Method, http.StatusText(ww.status)).Inc()
		httpDur.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
