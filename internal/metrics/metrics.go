package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Job outcomes recorded by ObserveJob.
const (
	OutcomeSuccess = "success"
	OutcomePartial = "partial"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"
)

// Metrics holds all Prometheus collectors for spend-guard. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	// Status transitions applied to campaigns
	CampaignTransitionsTotal *prometheus.CounterVec

	// Scheduled jobs (reconcile, reset_daily, reset_monthly)
	JobRunsTotal       *prometheus.CounterVec
	JobDurationSeconds *prometheus.HistogramVec

	// Ledger
	SpendRecordedTotal *prometheus.CounterVec
	SpendAmountTotal   prometheus.Counter

	// HTTP API
	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates a new Metrics instance with all collectors registered on a
// private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		CampaignTransitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spendguard_campaign_transitions_total",
				Help: "Campaign status transitions by kind, pause reason and source",
			},
			[]string{"kind", "reason", "source"},
		),

		JobRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spendguard_job_runs_total",
				Help: "Scheduled job runs by outcome",
			},
			[]string{"job", "outcome"},
		),
		JobDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spendguard_job_duration_seconds",
				Help:    "Scheduled job duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			},
			[]string{"job"},
		),

		SpendRecordedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spendguard_spend_recorded_total",
				Help: "Spend events submitted to the ledger by result",
			},
			[]string{"result"},
		),
		SpendAmountTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "spendguard_spend_amount_total",
				Help: "Sum of accepted spend amounts",
			},
		),

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spendguard_http_requests_total",
				Help: "HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spendguard_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		registry: reg,
	}

	reg.MustRegister(
		m.CampaignTransitionsTotal,
		m.JobRunsTotal,
		m.JobDurationSeconds,
		m.SpendRecordedTotal,
		m.SpendAmountTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// IncTransition counts one applied status change.
func (m *Metrics) IncTransition(kind, reason, source string) {
	if m == nil {
		return
	}
	m.CampaignTransitionsTotal.WithLabelValues(kind, reason, source).Inc()
}

// ObserveJob records one run of a scheduled job.
func (m *Metrics) ObserveJob(job, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.JobRunsTotal.WithLabelValues(job, outcome).Inc()
	m.JobDurationSeconds.WithLabelValues(job).Observe(took.Seconds())
}

// ObserveSpend records a ledger call. amount is only added when the spend
// was accepted.
func (m *Metrics) ObserveSpend(result string, amount float64) {
	if m == nil {
		return
	}
	m.SpendRecordedTotal.WithLabelValues(result).Inc()
	if result == OutcomeSuccess {
		m.SpendAmountTotal.Add(amount)
	}
}

// ObserveHTTP records a served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, took time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDurationSeconds.WithLabelValues(method, route).Observe(took.Seconds())
}
