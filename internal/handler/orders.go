package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
	"github.com/summit-surfaces/install-manager/backend/internal/utils"
)

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerName  string `json:"customerName" validate:"required"`
		CustomerEmail string `json:"customerEmail" validate:"required,email"`
		Items         []struct {
			ProductID int64 `json:"productID" validate:"required"`
			Quantity  int32 `json:"quantity" validate:"required,gt=0"`
		} `json:"items" validate:"required,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// price items from the catalog at order time; the client never supplies
	// prices
	order := &domain.Order{
		Number:        utils.GenerateOrderNumber(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        domain.OrderPending,
		Items:         make([]domain.OrderItem, 0, len(req.Items)),
	}

	for _, item := range req.Items {
		product, err := h.repository.GetProductByID(item.ProductID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, fmt.Sprintf("product %d not found", item.ProductID))
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		if !product.IsActive {
			h.errorResponse(w, r, fmt.Sprintf("product %q is no longer available", product.Name))
			return
		}

		order.Items = append(order.Items, domain.OrderItem{
			ProductID:      product.ID,
			ProductName:    product.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: product.PriceCents,
		})
		order.TotalCents += product.PriceCents * int64(item.Quantity)
	}

	if err := h.repository.CreateOrder(order); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	mailMessage := domain.MailMessage{
		Type: "order_confirmation",
		To:   order.CustomerEmail,
		Data: domain.OrderConfirmationMailData{
			CustomerName: order.CustomerName,
			OrderNumber:  order.Number,
			Total:        fmt.Sprintf("$%d.%02d", order.TotalCents/100, order.TotalCents%100),
		},
	}
	if err := h.publishMail(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "order placed", order)
}

func (h *Handler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repository.GetAllOrders()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "order list", orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order := r.Context().Value(OrderCtx).(*domain.Order)
	h.successResponse(w, r, "order info", order)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	order := r.Context().Value(OrderCtx).(*domain.Order)

	var req struct {
		Status string `json:"status" validate:"required,oneof=pending paid fulfilled cancelled"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	newStatus := domain.OrderStatus(req.Status)
	if err := utils.ValidateOrderTransition(order.Status, newStatus); err != nil {
		h.badRequest(w, r, err)
		return
	}

	order.Status = newStatus

	if err := h.repository.UpdateOrderStatus(order); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "order was modified concurrently, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "order status updated", order)
}
