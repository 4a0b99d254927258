package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecom-admin-backend/internal/models"
)

type StoreService interface {
	Create(ctx context.Context, userID string, req models.StoreRequest) (*models.Store, error)
	Get(ctx context.Context, storeID uuid.UUID) (*models.Store, error)
	ListByUser(ctx context.Context, userID string) ([]models.Store, error)
	Update(ctx context.Context, userID string, storeID uuid.UUID, req models.StoreRequest) (*models.Store, error)
	Delete(ctx context.Context, userID string, storeID uuid.UUID) error
}

type StoresHandler struct {
	svc StoreService
}

func NewStoresHandler(svc StoreService) *StoresHandler {
	return &StoresHandler{svc: svc}
}

func (h *StoresHandler) CreateStore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	store, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewStoreResponse(store))
}

func (h *StoresHandler) GetStore(c *gin.Context) {
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	store, err := h.svc.Get(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewStoreResponse(store))
}

func (h *StoresHandler) ListStores(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stores, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.StoreResponse, 0, len(stores))
	for i := range stores {
		responses = append(responses, models.NewStoreResponse(&stores[i]))
	}

	c.JSON(http.StatusOK, responses)
}

func (h *StoresHandler) UpdateStore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	var req models.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	store, err := h.svc.Update(c.Request.Context(), userID, storeID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewStoreResponse(store))
}

func (h *StoresHandler) DeleteStore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, storeID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "store deleted"})
}
