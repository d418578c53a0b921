package httpadapter

import (
	"errors"
	"net/http"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
	"spend-guard/internal/metrics"
)

// handleRecordSpend appends a spend event to a campaign. The body is
// {"amount": "12.50"}; numbers are accepted too. On success it returns
// HTTP 201 with the new entry, the updated totals and a warning per brand
// ceiling that is now met. The campaign keeps running until the next
// reconciliation cycle.
func (h *Handler) handleRecordSpend(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid campaign id")
		return
	}
	var req spendRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}

	receipt, err := h.ledger.RecordSpend(r.Context(), id, req.Amount)
	if err != nil {
		h.opts.Metrics.ObserveSpend(spendResult(err), 0)
		h.writeError(w, r, err)
		return
	}
	h.opts.Metrics.ObserveSpend(metrics.OutcomeSuccess, receipt.Entry.Amount.InexactFloat64())
	writeJSON(w, http.StatusCreated, newSpendResponse(receipt))
}

func spendResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	default:
		return metrics.OutcomeError
	}
}

// handleListSpendLogs returns spend entries newest first. It accepts
// optional campaign_id and limit query parameters.
func (h *Handler) handleListSpendLogs(w http.ResponseWriter, r *http.Request) {
	var (
		filter port.SpendLogFilter
		ok     bool
	)
	if filter.CampaignID, ok = queryInt64(r, "campaign_id"); !ok {
		badRequest(w, "invalid campaign_id")
		return
	}
	limit, ok := queryInt64(r, "limit")
	if !ok {
		badRequest(w, "invalid limit")
		return
	}
	if limit != nil {
		filter.Limit = int(*limit)
	}

	logs, err := h.admin.ListSpendLogs(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]spendLogResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, newSpendLogResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}
