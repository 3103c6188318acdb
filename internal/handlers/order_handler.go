package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/Lixing-Zhang/storefront-api/internal/service"
)

const maxOrderBodyBytes = 1 << 20

type orderCreatedResponse struct {
	Success     bool          `json:"success"`
	Message     string        `json:"message"`
	Order       *models.Order `json:"order"`
	OrderNumber string        `json:"orderNumber"`
}

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	Responder
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, rs Responder) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		Responder:    rs,
	}
}

// CreateOrder handles POST /api/orders
// - 201: order created with server-side totals
// - 400: malformed body or validation failure
// - 404: a requested product does not exist
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxOrderBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Warn("failed to decode order request", "error", err)
		h.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		h.Fail(w, r, err, "Failed to create order")
		return
	}

	h.JSON(w, http.StatusCreated, orderCreatedResponse{
		Success:     true,
		Message:     "Order created successfully",
		Order:       order,
		OrderNumber: order.OrderNumber(),
	})
}
