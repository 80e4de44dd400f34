package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionWrites         *prometheus.CounterVec
	budgetWrites              *prometheus.CounterVec
	dashboardRequests         *prometheus.CounterVec
	dashboardBuildDuration    prometheus.Histogram
	authenticationEventsTotal *prometheus.CounterVec
	activeUsersTotal          prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionWrites: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_writes_total",
				Help: "Total number of transaction create, update and delete operations",
			},
			[]string{"operation", "kind"},
		),
		budgetWrites: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_writes_total",
				Help: "Total number of budget upsert and delete operations",
			},
			[]string{"operation"},
		),
		dashboardRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_requests_total",
				Help: "Total number of dashboard view requests",
			},
			[]string{"status"},
		),
		dashboardBuildDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_build_duration_milliseconds",
				Help:    "Time spent filtering, sorting and aggregating the dashboard view",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		activeUsersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_users_total",
				Help: "Current number of registered users",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction_write":
		m.transactionWrites.WithLabelValues(tags["operation"], tags["kind"]).Inc()
	case "budget_write":
		m.budgetWrites.WithLabelValues(tags["operation"]).Inc()
	case "dashboard_requests":
		if status := tags["status"]; status != "" {
			m.dashboardRequests.WithLabelValues(status).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard_build":
		m.dashboardBuildDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "active_users":
		m.activeUsersTotal.Set(value)
	}
}
