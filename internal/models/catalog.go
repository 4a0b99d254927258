package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	BillboardID uuid.NullUUID
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Size struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Color struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
