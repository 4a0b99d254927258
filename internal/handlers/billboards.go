package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecom-admin-backend/internal/models"
)

type BillboardService interface {
	Create(ctx context.Context, userID string, storeID uuid.UUID, req models.BillboardRequest) (*models.Billboard, error)
	Get(ctx context.Context, billboardID uuid.UUID) (*models.Billboard, error)
	List(ctx context.Context, storeID uuid.UUID) ([]models.Billboard, error)
	Update(ctx context.Context, userID string, storeID, billboardID uuid.UUID, req models.BillboardRequest) (*models.Billboard, error)
	Delete(ctx context.Context, userID string, storeID, billboardID uuid.UUID) (*models.Billboard, error)
}

type BillboardsHandler struct {
	svc BillboardService
}

func NewBillboardsHandler(svc BillboardService) *BillboardsHandler {
	return &BillboardsHandler{svc: svc}
}

func (h *BillboardsHandler) CreateBillboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	var req models.BillboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	billboard, err := h.svc.Create(c.Request.Context(), userID, storeID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewBillboardResponse(billboard))
}

func (h *BillboardsHandler) GetBillboard(c *gin.Context) {
	billboardID, ok := pathUUID(c, "billboard_id")
	if !ok {
		return
	}

	billboard, err := h.svc.Get(c.Request.Context(), billboardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewBillboardResponse(billboard))
}

func (h *BillboardsHandler) ListBillboards(c *gin.Context) {
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	billboards, err := h.svc.List(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.BillboardResponse, 0, len(billboards))
	for i := range billboards {
		responses = append(responses, models.NewBillboardResponse(&billboards[i]))
	}

	c.JSON(http.StatusOK, responses)
}

func (h *BillboardsHandler) UpdateBillboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}
	billboardID, ok := pathUUID(c, "billboard_id")
	if !ok {
		return
	}

	var req models.BillboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	billboard, err := h.svc.Update(c.Request.Context(), userID, storeID, billboardID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewBillboardResponse(billboard))
}

func (h *BillboardsHandler) DeleteBillboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}
	billboardID, ok := pathUUID(c, "billboard_id")
	if !ok {
		return
	}

	billboard, err := h.svc.Delete(c.Request.Context(), userID, storeID, billboardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewBillboardResponse(billboard))
}
