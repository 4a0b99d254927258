package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecom-admin-backend/internal/models"
)

type ColorService interface {
	CreateColor(ctx context.Context, userID string, storeID uuid.UUID, req models.ColorRequest) (*models.Color, error)
	GetColor(ctx context.Context, colorID uuid.UUID) (*models.Color, error)
	ListColors(ctx context.Context, storeID uuid.UUID) ([]models.Color, error)
	UpdateColor(ctx context.Context, userID string, storeID, colorID uuid.UUID, req models.ColorRequest) (*models.Color, error)
	DeleteColor(ctx context.Context, userID string, storeID, colorID uuid.UUID) error
}

type ColorsHandler struct {
	svc ColorService
}

func NewColorsHandler(svc ColorService) *ColorsHandler {
	return &ColorsHandler{svc: svc}
}

func (h *ColorsHandler) CreateColor(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	var req models.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	color, err := h.svc.CreateColor(c.Request.Context(), userID, storeID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewColorResponse(color))
}

func (h *ColorsHandler) GetColor(c *gin.Context) {
	colorID, ok := pathUUID(c, "color_id")
	if !ok {
		return
	}

	color, err := h.svc.GetColor(c.Request.Context(), colorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewColorResponse(color))
}

func (h *ColorsHandler) ListColors(c *gin.Context) {
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	colors, err := h.svc.ListColors(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ColorResponse, 0, len(colors))
	for i := range colors {
		responses = append(responses, models.NewColorResponse(&colors[i]))
	}

	c.JSON(http.StatusOK, responses)
}

func (h *ColorsHandler) UpdateColor(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}
	colorID, ok := pathUUID(c, "color_id")
	if !ok {
		return
	}

	var req models.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	color, err := h.svc.UpdateColor(c.Request.Context(), userID, storeID, colorID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewColorResponse(color))
}

func (h *ColorsHandler) DeleteColor(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}
	colorID, ok := pathUUID(c, "color_id")
	if !ok {
		return
	}

	if err := h.svc.DeleteColor(c.Request.Context(), userID, storeID, colorID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "color deleted"})
}
