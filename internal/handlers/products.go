package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecom-admin-backend/internal/cache"
	"ecom-admin-backend/internal/database"
	"ecom-admin-backend/internal/models"
)

const (
	defaultProductLimit = 10
	maxProductLimit     = 50
)

type ProductService interface {
	Create(ctx context.Context, userID string, storeID uuid.UUID, req models.ProductRequest) (*models.Product, error)
	Get(ctx context.Context, productID uuid.UUID) (*models.Product, error)
	List(ctx context.Context, storeID uuid.UUID, filter database.ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, userID string, storeID, productID uuid.UUID, req models.ProductRequest) (*models.Product, error)
	Delete(ctx context.Context, userID string, storeID, productID uuid.UUID) (*models.Product, error)
}

type ProductsHandler struct {
	svc   ProductService
	cache *cache.Cache
}

func NewProductsHandler(svc ProductService, cache *cache.Cache) *ProductsHandler {
	return &ProductsHandler{svc: svc, cache: cache}
}

func (h *ProductsHandler) CreateProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	product, err := h.svc.Create(c.Request.Context(), userID, storeID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewProductResponse(product))
}

func (h *ProductsHandler) GetProduct(c *gin.Context) {
	productID, ok := pathUUID(c, "product_id")
	if !ok {
		return
	}

	product, err := h.svc.Get(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewProductResponse(product))
}

// ListProducts serves the public storefront query. Results are cached per
// store and query string; entries age out on TTL rather than being
// invalidated by writes.
func (h *ProductsHandler) ListProducts(c *gin.Context) {
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}

	filter, ok := parseProductFilter(c)
	if !ok {
		return
	}

	cacheKey := "products:" + storeID.String() + "?" + c.Request.URL.RawQuery
	var cached []models.ProductResponse
	if h.cache.GetJSON(c.Request.Context(), cacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.svc.List(c.Request.Context(), storeID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, models.NewProductResponse(&products[i]))
	}

	h.cache.SetJSON(c.Request.Context(), cacheKey, responses)
	c.JSON(http.StatusOK, responses)
}

func (h *ProductsHandler) UpdateProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}
	productID, ok := pathUUID(c, "product_id")
	if !ok {
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	product, err := h.svc.Update(c.Request.Context(), userID, storeID, productID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewProductResponse(product))
}

func (h *ProductsHandler) DeleteProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathUUID(c, "store_id")
	if !ok {
		return
	}
	productID, ok := pathUUID(c, "product_id")
	if !ok {
		return
	}

	product, err := h.svc.Delete(c.Request.Context(), userID, storeID, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewProductResponse(product))
}

// parseProductFilter reads the optional list predicates off the query
// string. The limit is clamped to [1, 50] and defaults to 10.
func parseProductFilter(c *gin.Context) (database.ProductFilter, bool) {
	var filter database.ProductFilter

	for param, target := range map[string]*uuid.NullUUID{
		"categoryId": &filter.CategoryID,
		"sizeId":     &filter.SizeID,
		"colorId":    &filter.ColorID,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + param})
			return filter, false
		}
		*target = uuid.NullUUID{UUID: id, Valid: true}
	}

	for param, target := range map[string]**bool{
		"isFeatured": &filter.IsFeatured,
		"isArchived": &filter.IsArchived,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + param})
			return filter, false
		}
		*target = &value
	}

	filter.Search = c.Query("search")

	filter.Limit = defaultProductLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid limit"})
			return filter, false
		}
		if limit < 1 {
			limit = 1
		}
		if limit > maxProductLimit {
			limit = maxProductLimit
		}
		filter.Limit = limit
	}

	return filter, true
}
