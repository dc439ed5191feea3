package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

func (h *Handler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.repository.GetAllProducts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "product list", products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product := r.Context().Value(ProductCtx).(*domain.Product)
	h.successResponse(w, r, "product info", product)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string `json:"name" validate:"required"`
		Category   string `json:"category" validate:"required,oneof=cabinet countertop flooring hardware"`
		Unit       string `json:"unit" validate:"required,oneof=each linear_ft sq_ft"`
		PriceCents int64  `json:"priceCents" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	product := &domain.Product{
		Name:       req.Name,
		Category:   domain.ProductCategory(req.Category),
		Unit:       req.Unit,
		PriceCents: req.PriceCents,
	}

	if err := h.repository.CreateProduct(product); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "product created", product)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	product := r.Context().Value(ProductCtx).(*domain.Product)

	var req struct {
		Name       *string `json:"name"`
		Category   *string `json:"category" validate:"omitempty,oneof=cabinet countertop flooring hardware"`
		Unit       *string `json:"unit" validate:"omitempty,oneof=each linear_ft sq_ft"`
		PriceCents *int64  `json:"priceCents" validate:"omitempty,gt=0"`
		IsActive   *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = domain.ProductCategory(*req.Category)
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.PriceCents != nil {
		product.PriceCents = *req.PriceCents
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateProduct(product); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "product was modified concurrently, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "product updated", product)
}
