package handler

import (
	"net/http"

	"github.com/summit-surfaces/install-manager/backend/internal/pricing"
)

// ComputeEstimate backs the storefront estimator. It is stateless: every
// request is priced fresh from the configured tables.
func (h *Handler) ComputeEstimate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind                 string  `json:"kind" validate:"required,oneof=kitchen vanity flooring"`
		Tier                 string  `json:"tier" validate:"required"`
		CabinetLinearFeet    float64 `json:"cabinetLinearFeet" validate:"gte=0"`
		CountertopSquareFeet float64 `json:"countertopSquareFeet" validate:"gte=0"`
		FloorSquareFeet      float64 `json:"floorSquareFeet" validate:"gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	tier, err := pricing.ParseTier(req.Tier)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	var estimate pricing.Estimate
	switch req.Kind {
	case "kitchen":
		estimate, err = pricing.EstimateKitchen(req.CabinetLinearFeet, req.CountertopSquareFeet, tier)
	case "vanity":
		estimate, err = pricing.EstimateVanity(req.CountertopSquareFeet, tier)
	case "flooring":
		estimate, err = pricing.EstimateFlooring(req.FloorSquareFeet, tier)
	}
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.successResponse(w, r, "estimate computed", estimate)
}
