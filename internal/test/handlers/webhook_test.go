package handlers_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecom-admin-backend/internal/database"
	"ecom-admin-backend/internal/handlers"
	"ecom-admin-backend/internal/models"
	"ecom-admin-backend/internal/services"
)

const webhookSecret = "test-webhook-secret"

type fakeFulfillment struct {
	called      bool
	lastOrderID uuid.UUID
	lastAddress services.ShippingAddress
	lastPhone   string
	err         error
}

func (f *fakeFulfillment) HandleCheckoutCompleted(ctx context.Context, orderID uuid.UUID, address services.ShippingAddress, phone string) (*models.Order, error) {
	f.called = true
	f.lastOrderID = orderID
	f.lastAddress = address
	f.lastPhone = phone
	if f.err != nil {
		return nil, f.err
	}
	return &models.Order{ID: orderID, IsPaid: true}, nil
}

func newWebhookRouter(svc *fakeFulfillment) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/webhooks/payment", handlers.NewWebhookHandler(svc, webhookSecret).HandlePaymentWebhook)
	return router
}

func sign(body string) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(router *gin.Engine, body, signature string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/webhooks/payment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Payment-Signature", signature)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func checkoutBody(orderID string) string {
	return `{
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"metadata": {"orderId": "` + orderID + `"},
				"customer_details": {
					"phone": "+1 555 0100",
					"address": {
						"line1": "12 Main St",
						"city": "Springfield",
						"state": "IL",
						"postal_code": "62704",
						"country": "US"
					}
				}
			}
		}
	}`
}

func TestWebhook_ValidSignatureFulfillsOrder(t *testing.T) {
	svc := &fakeFulfillment{}
	router := newWebhookRouter(svc)

	orderID := uuid.New()
	body := checkoutBody(orderID.String())
	w := postWebhook(router, body, sign(body))

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, svc.called)
	assert.Equal(t, orderID, svc.lastOrderID)
	assert.Equal(t, "+1 555 0100", svc.lastPhone)
	assert.Equal(t, "12 Main St", svc.lastAddress.Line1)
	assert.Equal(t, "US", svc.lastAddress.Country)
}

func TestWebhook_InvalidSignature(t *testing.T) {
	svc := &fakeFulfillment{}
	router := newWebhookRouter(svc)

	body := checkoutBody(uuid.NewString())
	w := postWebhook(router, body, "deadbeef")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.called, "an unverified payload must never reach fulfillment")
}

func TestWebhook_MissingSignature(t *testing.T) {
	svc := &fakeFulfillment{}
	router := newWebhookRouter(svc)

	body := checkoutBody(uuid.NewString())
	w := postWebhook(router, body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.called)
}

func TestWebhook_SignatureCoversExactBody(t *testing.T) {
	svc := &fakeFulfillment{}
	router := newWebhookRouter(svc)

	body := checkoutBody(uuid.NewString())
	w := postWebhook(router, body+" ", sign(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.called)
}

func TestWebhook_IgnoresOtherEventTypes(t *testing.T) {
	svc := &fakeFulfillment{}
	router := newWebhookRouter(svc)

	body := `{"type": "invoice.paid", "data": {"object": {}}}`
	w := postWebhook(router, body, sign(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
	assert.False(t, svc.called)
}

func TestWebhook_MissingOrderID(t *testing.T) {
	svc := &fakeFulfillment{}
	router := newWebhookRouter(svc)

	body := `{"type": "checkout.session.completed", "data": {"object": {"metadata": {}}}}`
	w := postWebhook(router, body, sign(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.called)
}

func TestWebhook_UnknownOrderMapsTo404(t *testing.T) {
	svc := &fakeFulfillment{err: database.ErrNotFound}
	router := newWebhookRouter(svc)

	body := checkoutBody(uuid.NewString())
	w := postWebhook(router, body, sign(body))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
