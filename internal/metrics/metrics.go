package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fintrack"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	storeOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Store call latency by table, operation and outcome.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"table", "op", "success"},
	)

	eventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "change_events_total",
			Help:      "Change events by type and outcome (published, failed, dropped).",
		},
		[]string{"type", "outcome"},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts and latency per chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequestsTotal.WithLabelValues(route, req.Method, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(route, req.Method).Observe(time.Since(start).Seconds())
	})
}

// ObserveStore returns a func that records the elapsed time of a store call.
//
//	defer metrics.ObserveStore("expenses", "insert")(&err)
func ObserveStore(table, op string) func(*error) {
	start := time.Now()
	return func(errp *error) {
		success := errp == nil || *errp == nil
		storeOperationDuration.
			WithLabelValues(table, op, strconv.FormatBool(success)).
			Observe(time.Since(start).Seconds())
	}
}

func EventPublished(eventType string) { eventsTotal.WithLabelValues(eventType, "published").Inc() }
func EventFailed(eventType string)    { eventsTotal.WithLabelValues(eventType, "failed").Inc() }
func EventDropped(eventType string)   { eventsTotal.WithLabelValues(eventType, "dropped").Inc() }
