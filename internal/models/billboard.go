package models

import (
	"time"

	"github.com/google/uuid"
)

type Billboard struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Label     string
	Image     *Image
	CreatedAt time.Time
	UpdatedAt time.Time
}
