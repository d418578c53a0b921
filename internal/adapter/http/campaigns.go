package httpadapter

import (
	"net/http"

	"spend-guard/internal/core/port"
)

// handleListCampaigns accepts optional brand_id, is_active and
// paused_for_budget query filters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		filter port.CampaignFilter
		ok     bool
	)
	if filter.BrandID, ok = queryInt64(r, "brand_id"); !ok {
		badRequest(w, "invalid brand_id")
		return
	}
	if filter.IsActive, ok = queryBool(r, "is_active"); !ok {
		badRequest(w, "invalid is_active")
		return
	}
	if filter.PausedForBudget, ok = queryBool(r, "paused_for_budget"); !ok {
		badRequest(w, "invalid paused_for_budget")
		return
	}

	campaigns, err := h.admin.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		resp = append(resp, newCampaignResponse(c, nil))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in port.CampaignInput
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	c, err := h.admin.CreateCampaign(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newCampaignResponse(*c, nil))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid campaign id")
		return
	}
	d, err := h.admin.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponse(d.Campaign, d.Schedule))
}

// handleUpdateCampaign renames a campaign or toggles it by hand. A manual
// toggle clears the budget pause flag.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid campaign id")
		return
	}
	var in port.CampaignInput
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	c, err := h.admin.UpdateCampaign(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponse(*c, nil))
}

func (h *Handler) handleSetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid campaign id")
		return
	}
	var body scheduleBody
	if err := decodeBody(r, &body); err != nil {
		badRequest(w, "invalid schedule: times must be HH:MM or HH:MM:SS")
		return
	}
	s, err := h.admin.SetSchedule(r.Context(), id, body.Start, body.End)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scheduleBody{Start: s.Start, End: s.End})
}

func (h *Handler) handleRemoveSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid campaign id")
		return
	}
	if err := h.admin.RemoveSchedule(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
