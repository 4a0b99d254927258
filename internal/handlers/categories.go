package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecom-admin-backend/internal/models"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, userID string, storeID uuid.UUID, req models.CategoryRequest) (*models.Category, error)
	GetCategory(ctx context.Context, categoryID uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context, storeID uuid.UUID) ([]models.Category, error)
	UpdateCategory(ctx context.Context, userID string, storeID, categoryID uuid.UUID, req models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID string, storeID, categoryID uuid.UUID) error
}

type CategoriesHandler struct {
	svc CategoryService
}

func NewCategoriesHandler(svc CategoryService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

func (h *CategoriesHandler) CreateCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	category, err := h.svc.CreateCategory(c.Request.Context(), userID, storeID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewCategoryResponse(category))
}

func (h *CategoriesHandler) GetCategory(c *gin.Context) {
	categoryID, ok := pathUUID(c, "category_id")
	if !ok {
		return
	}

	category, err := h.svc.GetCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewCategoryResponse(category))
}

func (h *CategoriesHandler) ListCategories(c *gin.Context) {
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	categories, err := h.svc.ListCategories(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, models.NewCategoryResponse(&categories[i]))
	}

	c.JSON(http.StatusOK, responses)
}

func (h *CategoriesHandler) UpdateCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}
	categoryID, ok := pathUUID(c, "category_id")
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	category, err := h.svc.UpdateCategory(c.Request.Context(), userID, storeID, categoryID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewCategoryResponse(category))
}

func (h *CategoriesHandler) DeleteCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}
	categoryID, ok := pathUUID(c, "category_id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(c.Request.Context(), userID, storeID, categoryID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
