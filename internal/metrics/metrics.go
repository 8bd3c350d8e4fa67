// Package metrics holds the Prometheus collectors of go-box-keeper.
//
// Every [Metrics] value owns its registry, so tests can create as many as
// they need without colliding on the global default registerer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "boxkeeper"

// Outcome label values shared by the slot operation counters.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeFault    = "fault"
	OutcomeError    = "error"
)

// Metrics is the set of application collectors.
type Metrics struct {
	registry *prometheus.Registry

	slotOperations  *prometheus.CounterVec
	integrityFaults *prometheus.CounterVec
	creditedUsage   prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New registers all collectors, plus the Go runtime and process collectors,
// on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		slotOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_operations_total",
			Help:      "Slot assign and unassign attempts by outcome.",
		}, []string{"operation", "outcome"}),
		integrityFaults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "integrity_faults_total",
			Help:      "Corrupted slots or occupants detected while releasing a slot.",
		}, []string{"kind"}),
		creditedUsage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credited_usage_milliseconds_total",
			Help:      "Time of use credited to users on unassign.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.slotOperations,
		m.integrityFaults,
		m.creditedUsage,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveSlotOperation counts one assign or unassign attempt.
func (m *Metrics) ObserveSlotOperation(operation, outcome string) {
	m.slotOperations.WithLabelValues(operation, outcome).Inc()
}

// ObserveIntegrityFault counts one corrupted record found in storage.
func (m *Metrics) ObserveIntegrityFault(kind string) {
	m.integrityFaults.WithLabelValues(kind).Inc()
}

// AddCreditedUsage adds credited milliseconds. Non-positive values are
// ignored since counters never decrease.
func (m *Metrics) AddCreditedUsage(ms int64) {
	if ms <= 0 {
		return
	}
	m.creditedUsage.Add(float64(ms))
}

// ObserveHTTPRequest records a finished request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
