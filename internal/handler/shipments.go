package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/summit-surfaces/install-manager/backend/internal/domain"
	"github.com/summit-surfaces/install-manager/backend/internal/utils"
)

// TrackShipment is the public lookup behind the demo tracking page.
func (h *Handler) TrackShipment(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	shipment, err := h.repository.GetShipmentByTrackingCode(code)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "unknown tracking code")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shipment status", shipment)
}

func (h *Handler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Carrier string `json:"carrier" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shipment := &domain.Shipment{
		TrackingCode: utils.GenerateTrackingCode(),
		Carrier:      req.Carrier,
		Status:       domain.ShipmentPreparing,
	}

	if err := h.repository.CreateShipment(shipment); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shipment created", shipment)
}

func (h *Handler) AddShipmentEvent(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	shipment, err := h.repository.GetShipmentByTrackingCode(code)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "unknown tracking code")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	var req struct {
		Location    string `json:"location" validate:"required"`
		Description string `json:"description" validate:"required"`
		Status      string `json:"status" validate:"required,oneof=preparing in_transit delivered"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	newStatus := domain.ShipmentStatus(req.Status)
	if err := utils.ValidateShipmentTransition(shipment.Status, newStatus); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shipment.Status = newStatus
	event := &domain.ShipmentEvent{
		Location:    req.Location,
		Description: req.Description,
		OccurredAt:  time.Now(),
	}

	if err := h.repository.AddShipmentEvent(shipment, event); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "shipment was modified concurrently, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	shipment.Events = append(shipment.Events, *event)
	h.successResponse(w, r, "shipment event recorded", shipment)
}
