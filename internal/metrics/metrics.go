// Package metrics exposes Prometheus collectors for the HTTP API and the
// domain operations worth alerting on.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "tradelog"

// Collector groups the service's Prometheus instruments.
type Collector struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	expenses        *prometheus.CounterVec
	authAttempts    *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latencies in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		expenses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "expenses_created_total",
				Help:      "Expenses committed, by type",
			},
			[]string{"type"},
		),
		authAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_attempts_total",
				Help:      "Login and registration attempts, by action and outcome",
			},
			[]string{"action", "outcome"},
		),
	}

	reg.MustRegister(c.requests, c.requestDuration, c.expenses, c.authAttempts)
	return c
}

// NewWithRuntime creates a registry that also carries the Go runtime and
// process collectors, for the production /metrics endpoint.
func NewWithRuntime() (*prometheus.Registry, *Collector) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, New(reg)
}

// ObserveRequest records one finished HTTP request. A nil Collector records
// nothing.
func (c *Collector) ObserveRequest(method, route, status string, d time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(method, route, status).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ExpenseCreated counts a committed expense.
func (c *Collector) ExpenseCreated(expenseType string) {
	if c == nil {
		return
	}
	c.expenses.WithLabelValues(expenseType).Inc()
}

// AuthAttempt counts a login or registration outcome ("success", "failure", ...).
func (c *Collector) AuthAttempt(action, outcome string) {
	if c == nil {
		return
	}
	c.authAttempts.WithLabelValues(action, outcome).Inc()
}
