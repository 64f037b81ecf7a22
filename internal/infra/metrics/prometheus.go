package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "car_rental"

// Recorder owns a private registry so tests can build as many as they like.
type Recorder struct {
	registry *prometheus.Registry

	searches        *prometheus.CounterVec
	searchDuration  prometheus.Histogram
	offersPerSearch prometheus.Histogram
	sessionOps      *prometheus.CounterVec
	confirmations   *prometheus.CounterVec
	outboxPublishes *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Availability searches by outcome.",
		}, []string{"outcome"}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time spent answering an availability search.",
			Buckets:   prometheus.DefBuckets,
		}),
		offersPerSearch: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "offers_per_search",
			Help:      "Number of offers returned by a search.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		}),
		sessionOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search_session",
			Name:      "operations_total",
			Help:      "Search session store operations by result.",
		}, []string{"op", "result"}),
		confirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_confirmations_total",
			Help:      "Reservation confirmation attempts by outcome.",
		}, []string{"outcome"}),
		outboxPublishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "publishes_total",
			Help:      "Outbox jobs relayed to the broker by result.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.searches,
		r.searchDuration,
		r.offersPerSearch,
		r.sessionOps,
		r.confirmations,
		r.outboxPublishes,
		r.httpRequests,
		r.httpDuration,
	)
	return r
}

func (r *Recorder) ObserveSearch(elapsed time.Duration, offers int, outcome string) {
	r.searches.WithLabelValues(outcome).Inc()
	r.searchDuration.Observe(elapsed.Seconds())
	r.offersPerSearch.Observe(float64(offers))
}

func (r *Recorder) RecordConfirmation(outcome string) {
	r.confirmations.WithLabelValues(outcome).Inc()
}

func (r *Recorder) RecordSessionOp(op, result string) {
	r.sessionOps.WithLabelValues(op, result).Inc()
}

func (r *Recorder) RecordOutboxPublish(result string) {
	r.outboxPublishes.WithLabelValues(result).Inc()
}

func (r *Recorder) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
