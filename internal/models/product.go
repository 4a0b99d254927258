package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID         uuid.UUID
	StoreID    uuid.UUID
	CategoryID uuid.UUID
	SizeID     uuid.UUID
	ColorID    uuid.UUID
	Name       string
	Price      decimal.Decimal
	IsFeatured bool
	IsArchived bool
	Images     []Image
	Category   *Category
	Size       *Size
	Color      *Color
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
