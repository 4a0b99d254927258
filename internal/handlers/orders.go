package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecom-admin-backend/internal/models"
)

type OrderService interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, storeID uuid.UUID) ([]models.Order, error)
}

// OrdersHandler is read-only: orders are created by the storefront checkout
// and mutated only through the payment webhook.
type OrdersHandler struct {
	svc OrderService
}

func NewOrdersHandler(svc OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

func (h *OrdersHandler) GetOrder(c *gin.Context) {
	orderID, ok := pathUUID(c, "order_id")
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewOrderResponse(order))
}

func (h *OrdersHandler) ListOrders(c *gin.Context) {
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	orders, err := h.svc.ListOrders(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, models.NewOrderResponse(&orders[i]))
	}

	c.JSON(http.StatusOK, responses)
}
