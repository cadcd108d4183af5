package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fete_http_requests_total",
		Help: "HTTP requests by method, route, and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fete_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// LoginAttempts counts gate logins by gate (guest/admin) and outcome.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fete_login_attempts_total",
		Help: "Gate login attempts by gate and outcome.",
	}, []string{"gate", "outcome"})

	// RSVPSubmissions counts stored responses by attendance.
	RSVPSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fete_rsvp_submissions_total",
		Help: "Stored RSVP submissions by attendance.",
	}, []string{"attending"})

	// DuplicateRejections counts submissions rejected as duplicates.
	DuplicateRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fete_rsvp_duplicates_total",
		Help: "RSVP submissions rejected as duplicates.",
	})
)

// Metrics records request counts and latency per chi route pattern. The
// pattern is read after the handler runs so path parameters stay collapsed
// (e.g. /api/admin/invitees/{id}) instead of exploding label cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			httpDuration.WithLabelValues(r.Method, route).Observe(v)
			httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		}))
		defer timer.ObserveDuration()

		next.ServeHTTP(sw, r)
	})
}
