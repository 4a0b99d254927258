package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ecom-admin-backend/internal/cache"
	"ecom-admin-backend/internal/database"
	"ecom-admin-backend/internal/handlers"
	"ecom-admin-backend/internal/middleware"
	"ecom-admin-backend/internal/models"
	"ecom-admin-backend/internal/services"
)

type fakeProductService struct {
	lastFilter database.ProductFilter
	listCalled bool
	createErr  error
}

func (f *fakeProductService) Create(ctx context.Context, userID string, storeID uuid.UUID, req models.ProductRequest) (*models.Product, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Product{ID: uuid.New(), StoreID: storeID, Name: req.Name, Price: req.Price}, nil
}

func (f *fakeProductService) Get(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	return nil, database.ErrNotFound
}

func (f *fakeProductService) List(ctx context.Context, storeID uuid.UUID, filter database.ProductFilter) ([]models.Product, error) {
	f.listCalled = true
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeProductService) Update(ctx context.Context, userID string, storeID, productID uuid.UUID, req models.ProductRequest) (*models.Product, error) {
	return nil, database.ErrNotFound
}

func (f *fakeProductService) Delete(ctx context.Context, userID string, storeID, productID uuid.UUID) (*models.Product, error) {
	return nil, database.ErrNotFound
}

func newProductsRouter(svc *fakeProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewProductsHandler(svc, cache.New(nil, 0))

	router := gin.New()
	router.GET("/stores/:store_id/products", handler.ListProducts)

	authed := router.Group("")
	authed.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, "user-1")
	})
	authed.POST("/stores/:store_id/products", handler.CreateProduct)

	return router
}

func TestListProducts_DefaultLimit(t *testing.T) {
	svc := &fakeProductService{}
	router := newProductsRouter(svc)

	req, _ := http.NewRequest("GET", "/stores/"+uuid.NewString()+"/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, svc.lastFilter.Limit)
}

func TestListProducts_ClampsLimit(t *testing.T) {
	svc := &fakeProductService{}
	router := newProductsRouter(svc)

	req, _ := http.NewRequest("GET", "/stores/"+uuid.NewString()+"/products?limit=500", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, svc.lastFilter.Limit)

	req, _ = http.NewRequest("GET", "/stores/"+uuid.NewString()+"/products?limit=-3", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.lastFilter.Limit)
}

func TestListProducts_ParsesFilters(t *testing.T) {
	svc := &fakeProductService{}
	router := newProductsRouter(svc)

	categoryID := uuid.New()
	req, _ := http.NewRequest("GET", "/stores/"+uuid.NewString()+"/products?categoryId="+categoryID.String()+"&isFeatured=true&search=shirt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.lastFilter.CategoryID.Valid)
	assert.Equal(t, categoryID, svc.lastFilter.CategoryID.UUID)
	assert.NotNil(t, svc.lastFilter.IsFeatured)
	assert.True(t, *svc.lastFilter.IsFeatured)
	assert.Equal(t, "shirt", svc.lastFilter.Search)
}

func TestListProducts_RejectsBadFilter(t *testing.T) {
	svc := &fakeProductService{}
	router := newProductsRouter(svc)

	req, _ := http.NewRequest("GET", "/stores/"+uuid.NewString()+"/products?categoryId=not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.listCalled)
}

func TestCreateProduct_AccessDeniedMapsTo403(t *testing.T) {
	svc := &fakeProductService{createErr: services.ErrStoreAccessDenied}
	router := newProductsRouter(svc)

	body := `{"name":"shirt","price":"10","categoryId":"x","sizeId":"y","colorId":"z","images":[]}`
	req, _ := http.NewRequest("POST", "/stores/"+uuid.NewString()+"/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateProduct_ValidationErrorMapsTo400(t *testing.T) {
	svc := &fakeProductService{createErr: &services.ValidationError{Msg: "images are required"}}
	router := newProductsRouter(svc)

	body := `{"name":"shirt","price":"10"}`
	req, _ := http.NewRequest("POST", "/stores/"+uuid.NewString()+"/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "images are required")
}
