package httpadapter

import (
	"net/http"

	"spend-guard/internal/core/port"
)

func (h *Handler) handleListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.admin.ListBrands(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]brandResponse, 0, len(brands))
	for _, b := range brands {
		resp = append(resp, newBrandResponse(b))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCreateBrand(w http.ResponseWriter, r *http.Request) {
	var in port.BrandInput
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	b, err := h.admin.CreateBrand(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newBrandResponse(*b))
}

func (h *Handler) handleGetBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid brand id")
		return
	}
	b, err := h.admin.GetBrand(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newBrandResponse(*b))
}

// handleUpdateBrand replaces the name and ceilings of a brand. Spend
// accumulators are not editable here.
func (h *Handler) handleUpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid brand id")
		return
	}
	var in port.BrandInput
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	b, err := h.admin.UpdateBrand(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newBrandResponse(*b))
}
