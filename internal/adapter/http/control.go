package httpadapter

import (
	"context"
	"net/http"
	"time"

	"spend-guard/internal/core/port"
)

// handleReconcile runs one reconciliation cycle synchronously. Per-campaign
// failures are part of the 200 response; only a cycle that could not start
// is an error.
func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	report, err := h.control.RunCycle(r.Context(), h.now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cycleResponse{
		CycleID:     report.CycleID,
		StartedAt:   report.StartedAt,
		Evaluated:   report.Evaluated,
		Paused:      report.Paused,
		Reactivated: report.Reactivated,
		Corrected:   report.Corrected,
		Failures:    newFailures(report.Failures),
	})
}

func (h *Handler) handleResetDaily(w http.ResponseWriter, r *http.Request) {
	h.runReset(w, r, h.control.ResetDaily)
}

// handleResetMonthly is a no-op with skipped=true unless the current day
// in the configured zone is the first of the month.
func (h *Handler) handleResetMonthly(w http.ResponseWriter, r *http.Request) {
	h.runReset(w, r, h.control.ResetMonthly)
}

func (h *Handler) runReset(w http.ResponseWriter, r *http.Request, run func(context.Context, time.Time) (*port.ResetReport, error)) {
	report, err := run(r.Context(), h.now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resetResponse{
		Period:       report.Period,
		Skipped:      report.Skipped,
		BrandsReset:  report.BrandsReset,
		Reactivated:  report.Reactivated,
		StillBlocked: report.StillBlocked,
		Failures:     newFailures(report.Failures),
	})
}
