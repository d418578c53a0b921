package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()
	require.NotNil(t, m)
	require.NotNil(t, m.Registry())

	m.IncTransition("paused", "daily_budget_exceeded", "cycle")
	m.IncTransition("paused", "daily_budget_exceeded", "cycle")
	m.IncTransition("reactivated", "none", "daily_reset")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CampaignTransitionsTotal.WithLabelValues("paused", "daily_budget_exceeded", "cycle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CampaignTransitionsTotal.WithLabelValues("reactivated", "none", "daily_reset")))
}

func TestObserveJob(t *testing.T) {
	m := New()
	m.ObserveJob("reconcile", OutcomeSuccess, 20*time.Millisecond)
	m.ObserveJob("reconcile", OutcomeError, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobRunsTotal.WithLabelValues("reconcile", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobRunsTotal.WithLabelValues("reconcile", OutcomeError)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.JobDurationSeconds))
}

func TestObserveSpend(t *testing.T) {
	m := New()
	m.ObserveSpend(OutcomeSuccess, 12.5)
	m.ObserveSpend(OutcomeError, 99)

	assert.Equal(t, 12.5, testutil.ToFloat64(m.SpendAmountTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SpendRecordedTotal.WithLabelValues(OutcomeError)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncTransition("paused", "out_of_schedule", "cycle")
		m.ObserveJob("reset_daily", OutcomeSuccess, time.Millisecond)
		m.ObserveSpend(OutcomeSuccess, 1)
		m.ObserveHTTP(http.MethodGet, "/healthz", http.StatusOK, time.Millisecond)
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodPost, "/api/v1/campaigns/{id}/spend", http.StatusCreated, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "spendguard_http_requests_total")
	assert.Contains(t, body, `route="/api/v1/campaigns/{id}/spend"`)
	assert.Contains(t, body, "go_goroutines")
}
