package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecom-admin-backend/internal/models"
)

type SizeService interface {
	CreateSize(ctx context.Context, userID string, storeID uuid.UUID, req models.SizeRequest) (*models.Size, error)
	GetSize(ctx context.Context, sizeID uuid.UUID) (*models.Size, error)
	ListSizes(ctx context.Context, storeID uuid.UUID) ([]models.Size, error)
	UpdateSize(ctx context.Context, userID string, storeID, sizeID uuid.UUID, req models.SizeRequest) (*models.Size, error)
	DeleteSize(ctx context.Context, userID string, storeID, sizeID uuid.UUID) error
}

type SizesHandler struct {
	svc SizeService
}

func NewSizesHandler(svc SizeService) *SizesHandler {
	return &SizesHandler{svc: svc}
}

func (h *SizesHandler) CreateSize(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	var req models.SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	size, err := h.svc.CreateSize(c.Request.Context(), userID, storeID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewSizeResponse(size))
}

func (h *SizesHandler) GetSize(c *gin.Context) {
	sizeID, ok := pathUUID(c, "size_id")
	if !ok {
		return
	}

	size, err := h.svc.GetSize(c.Request.Context(), sizeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewSizeResponse(size))
}

func (h *SizesHandler) ListSizes(c *gin.Context) {
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	sizes, err := h.svc.ListSizes(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.SizeResponse, 0, len(sizes))
	for i := range sizes {
		responses = append(responses, models.NewSizeResponse(&sizes[i]))
	}

	c.JSON(http.StatusOK, responses)
}

func (h *SizesHandler) UpdateSize(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}
	sizeID, ok := pathUUID(c, "size_id")
	if !ok {
		return
	}

	var req models.SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	size, err := h.svc.UpdateSize(c.Request.Context(), userID, storeID, sizeID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewSizeResponse(size))
}

func (h *SizesHandler) DeleteSize(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}
	sizeID, ok := pathUUID(c, "size_id")
	if !ok {
		return
	}

	if err := h.svc.DeleteSize(c.Request.Context(), userID, storeID, sizeID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "size deleted"})
}
