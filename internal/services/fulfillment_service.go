package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ecom-admin-backend/internal/models"
)

type FulfillmentStore interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, storeID uuid.UUID) ([]models.Order, error)
	MarkOrderPaid(ctx context.Context, orderID uuid.UUID, address, phone string) (*models.Order, error)
}

// ShippingAddress is the address block a payment provider reports with a
// completed checkout.
type ShippingAddress struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Format joins the non-empty components into the single address string
// stored on the order.
func (a ShippingAddress) Format() string {
	parts := []string{a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country}
	var filled []string
	for _, part := range parts {
		if part != "" {
			filled = append(filled, part)
		}
	}
	return strings.Join(filled, ", ")
}

// FulfillmentService applies payment confirmations to orders.
type FulfillmentService struct {
	db FulfillmentStore
}

func NewFulfillmentService(db FulfillmentStore) *FulfillmentService {
	return &FulfillmentService{db: db}
}

func (s *FulfillmentService) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	return s.db.GetOrder(ctx, orderID)
}

func (s *FulfillmentService) ListOrders(ctx context.Context, storeID uuid.UUID) ([]models.Order, error) {
	return s.db.ListOrders(ctx, storeID)
}

// HandleCheckoutCompleted marks the order paid with the reported contact
// details and archives its products. Replayed confirmations for an already
// paid order are acknowledged without touching it again.
func (s *FulfillmentService) HandleCheckoutCompleted(ctx context.Context, orderID uuid.UUID, address ShippingAddress, phone string) (*models.Order, error) {
	order, err := s.db.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsPaid {
		return order, nil
	}

	return s.db.MarkOrderPaid(ctx, orderID, address.Format(), phone)
}
