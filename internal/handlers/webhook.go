package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecom-admin-backend/internal/models"
	"ecom-admin-backend/internal/services"
)

const signatureHeader = "X-Payment-Signature"

type FulfillmentService interface {
	HandleCheckoutCompleted(ctx context.Context, orderID uuid.UUID, address services.ShippingAddress, phone string) (*models.Order, error)
}

// CheckoutEvent is the payment provider's webhook envelope. Only completed
// checkout sessions are acted on; other event types are acknowledged and
// ignored.
type CheckoutEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			Metadata        map[string]string `json:"metadata"`
			CustomerDetails struct {
				Phone   string `json:"phone"`
				Address struct {
					Line1      string `json:"line1"`
					Line2      string `json:"line2"`
					City       string `json:"city"`
					State      string `json:"state"`
					PostalCode string `json:"postal_code"`
					Country    string `json:"country"`
				} `json:"address"`
			} `json:"customer_details"`
		} `json:"object"`
	} `json:"data"`
}

type WebhookHandler struct {
	svc    FulfillmentService
	secret string
}

func NewWebhookHandler(svc FulfillmentService, secret string) *WebhookHandler {
	return &WebhookHandler{svc: svc, secret: secret}
}

// HandlePaymentWebhook verifies the HMAC signature over the raw body before
// any parsing, then dispatches on the event type.
func (h *WebhookHandler) HandlePaymentWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read request body"})
		return
	}

	if !h.verifySignature(body, c.GetHeader(signatureHeader)) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid signature"})
		return
	}

	var event CheckoutEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid event payload"})
		return
	}

	if event.Type != "checkout.session.completed" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	orderID, err := uuid.Parse(event.Data.Object.Metadata["orderId"])
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing or invalid orderId in event metadata"})
		return
	}

	addr := event.Data.Object.CustomerDetails.Address
	shipping := services.ShippingAddress{
		Line1:      addr.Line1,
		Line2:      addr.Line2,
		City:       addr.City,
		State:      addr.State,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
	}

	if _, err := h.svc.HandleCheckoutCompleted(c.Request.Context(), orderID, shipping, event.Data.Object.CustomerDetails.Phone); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *WebhookHandler) verifySignature(body []byte, signature string) bool {
	if h.secret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
