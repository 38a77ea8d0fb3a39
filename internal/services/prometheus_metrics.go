package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	authenticationEventsTotal *prometheus.CounterVec
	transactionsRecorded      *prometheus.CounterVec
	budgetEvaluationsTotal    *prometheus.CounterVec
	notificationsCreated      *prometheus.CounterVec
	dashboardRequestsTotal    prometheus.Counter
	dashboardDuration         prometheus.Histogram
	trendRequestsTotal        *prometheus.CounterVec
	activeUsersTotal          prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		budgetEvaluationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_evaluations_total",
				Help: "Total number of budget status evaluations by outcome",
			},
			[]string{"status"},
		),
		notificationsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_created_total",
				Help: "Total number of notifications created",
			},
			[]string{"notification_type"},
		),
		dashboardRequestsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dashboard_requests_total",
				Help: "Total number of dashboard requests served",
			},
		),
		dashboardDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_build_duration_milliseconds",
				Help:    "Dashboard composition duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		trendRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trend_requests_total",
				Help: "Total number of trend requests served",
			},
			[]string{"kind"},
		),
		activeUsersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_users_total",
				Help: "Current number of active users",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case "transaction_recorded":
		if transactionType := tags["type"]; transactionType != "" {
			m.transactionsRecorded.WithLabelValues(transactionType).Inc()
		}
	case "budget_evaluation":
		if status := tags["status"]; status != "" {
			m.budgetEvaluationsTotal.WithLabelValues(status).Inc()
		}
	case "notification_created":
		if notificationType := tags["notification_type"]; notificationType != "" {
			m.notificationsCreated.WithLabelValues(notificationType).Inc()
		}
	case "dashboard_request":
		m.dashboardRequestsTotal.Inc()
	case "trend_request":
		if kind := tags["kind"]; kind != "" {
			m.trendRequestsTotal.WithLabelValues(kind).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard_build":
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "active_users":
		m.activeUsersTotal.Set(value)
	}
}
