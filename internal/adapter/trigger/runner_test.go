package trigger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spend-guard/internal/core/port"
	"spend-guard/internal/core/port/mocks"
	"spend-guard/internal/metrics"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNextMidnight(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tests := []struct {
		name string
		t    time.Time
		loc  *time.Location
		want time.Time
	}{
		{
			name: "mid day",
			t:    time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC),
			loc:  time.UTC,
			want: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly midnight moves to the next day",
			t:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			loc:  time.UTC,
			want: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "end of february",
			t:    time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC),
			loc:  time.UTC,
			want: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "leap year",
			t:    time.Date(2028, 2, 28, 18, 0, 0, 0, time.UTC),
			loc:  time.UTC,
			want: time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "end of year",
			t:    time.Date(2026, 12, 31, 8, 0, 0, 0, time.UTC),
			loc:  time.UTC,
			want: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "utc instant already on the next local day",
			t:    time.Date(2026, 4, 30, 22, 30, 0, 0, time.UTC),
			loc:  berlin,
			want: time.Date(2026, 5, 2, 0, 0, 0, 0, berlin),
		},
		{
			name: "utc instant before the local boundary",
			t:    time.Date(2026, 4, 30, 21, 30, 0, 0, time.UTC),
			loc:  berlin,
			want: time.Date(2026, 5, 1, 0, 0, 0, 0, berlin),
		},
		{
			name: "day of a dst switch",
			t:    time.Date(2026, 3, 29, 12, 0, 0, 0, berlin),
			loc:  berlin,
			want: time.Date(2026, 3, 30, 0, 0, 0, 0, berlin),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextMidnight(tt.t, tt.loc)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.True(t, got.After(tt.t))
		})
	}
}

func TestReconcileOutcomes(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		report  *port.CycleReport
		err     error
		outcome string
	}{
		{"clean cycle", &port.CycleReport{Evaluated: 3}, nil, metrics.OutcomeSuccess},
		{"cycle with failures", &port.CycleReport{Evaluated: 3, Failures: []port.CampaignFailure{{CampaignID: 2, Err: errors.New("boom")}}}, nil, metrics.OutcomePartial},
		{"listing failed", nil, errors.New("db down"), metrics.OutcomeError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := mocks.NewMockController(t)
			ctl.EXPECT().RunCycle(mock.Anything, now).Return(tt.report, tt.err).Once()
			m := metrics.New()

			New(ctl, Config{}, m, discardLogger(), fixedClock(now)).Reconcile(context.Background())

			assert.Equal(t, 1.0, testutil.ToFloat64(m.JobRunsTotal.WithLabelValues(JobReconcile, tt.outcome)))
		})
	}
}

func TestReconcilePassesLocalTime(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	instant := time.Date(2026, 3, 14, 1, 0, 0, 0, time.UTC)

	ctl := mocks.NewMockController(t)
	ctl.EXPECT().RunCycle(mock.Anything, mock.Anything).
		Run(func(_ context.Context, now time.Time) {
			assert.Equal(t, tokyo, now.Location())
			assert.Equal(t, 10, now.Hour())
			assert.True(t, instant.Equal(now))
		}).
		Return(&port.CycleReport{}, nil).Once()

	New(ctl, Config{Location: tokyo}, nil, discardLogger(), fixedClock(instant)).Reconcile(context.Background())
}

func TestResetsRunDailyThenMonthly(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	ctl := mocks.NewMockController(t)
	m := metrics.New()

	var order []string
	ctl.EXPECT().ResetDaily(mock.Anything, now).
		Run(func(context.Context, time.Time) { order = append(order, JobResetDaily) }).
		Return(&port.ResetReport{Period: "daily", BrandsReset: 4, Reactivated: 2}, nil).Once()
	ctl.EXPECT().ResetMonthly(mock.Anything, now).
		Run(func(context.Context, time.Time) { order = append(order, JobResetMonthly) }).
		Return(&port.ResetReport{Period: "monthly", BrandsReset: 4}, nil).Once()

	New(ctl, Config{}, m, discardLogger(), fixedClock(now)).Resets(context.Background(), now)

	assert.Equal(t, []string{JobResetDaily, JobResetMonthly}, order)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobRunsTotal.WithLabelValues(JobResetDaily, metrics.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobRunsTotal.WithLabelValues(JobResetMonthly, metrics.OutcomeSuccess)))
}

func TestResetsContinueAfterDailyFailure(t *testing.T) {
	now := time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC)
	ctl := mocks.NewMockController(t)
	m := metrics.New()

	ctl.EXPECT().ResetDaily(mock.Anything, now).Return(nil, errors.New("db down")).Once()
	ctl.EXPECT().ResetMonthly(mock.Anything, now).Return(&port.ResetReport{Period: "monthly", Skipped: true}, nil).Once()

	New(ctl, Config{}, m, discardLogger(), fixedClock(now)).Resets(context.Background(), now)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobRunsTotal.WithLabelValues(JobResetDaily, metrics.OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobRunsTotal.WithLabelValues(JobResetMonthly, metrics.OutcomeSkipped)))
}

func TestStartRunsCycleImmediately(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	ctl := mocks.NewMockController(t)

	ran := make(chan struct{}, 1)
	ctl.EXPECT().RunCycle(mock.Anything, now).
		Run(func(context.Context, time.Time) {
			select {
			case ran <- struct{}{}:
			default:
			}
		}).
		Return(&port.CycleReport{}, nil)

	r := New(ctl, Config{ReconcileInterval: time.Hour}, nil, discardLogger(), fixedClock(now))
	r.Start(context.Background())

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("cycle did not run on start")
	}
	r.Stop()
	r.Stop()
}

func TestStartFiresResetsAtMidnight(t *testing.T) {
	// Fifty milliseconds before the first of March and the clock never
	// advances: the loop must hand the boundary itself to the controller
	// and must not run the same boundary a second time.
	now := time.Date(2026, 2, 28, 23, 59, 59, 950_000_000, time.UTC)
	boundary := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ctl := mocks.NewMockController(t)

	var daily atomic.Int32
	fired := make(chan time.Time, 1)
	ctl.EXPECT().ResetDaily(mock.Anything, boundary).
		Run(func(context.Context, time.Time) { daily.Add(1) }).
		Return(&port.ResetReport{Period: "daily"}, nil)
	ctl.EXPECT().ResetMonthly(mock.Anything, boundary).
		Run(func(_ context.Context, at time.Time) {
			select {
			case fired <- at:
			default:
			}
		}).
		Return(&port.ResetReport{Period: "monthly"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := New(ctl, Config{}, nil, discardLogger(), fixedClock(now))
	r.Start(ctx)

	select {
	case at := <-fired:
		assert.Equal(t, 1, at.Day())
	case <-time.After(2 * time.Second):
		t.Fatal("resets did not fire at midnight")
	}

	time.Sleep(300 * time.Millisecond)
	cancel()
	r.Stop()
	assert.Equal(t, int32(1), daily.Load())
}
