package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	IsPaid    bool
	Phone     string
	Address   string
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem joins an order to a purchased product. ProductName and
// ProductPrice are denormalized from the product row on read.
type OrderItem struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	ProductID    uuid.UUID
	ProductName  string
	ProductPrice decimal.Decimal
}
