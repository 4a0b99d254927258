package models

import (
	"time"

	"github.com/google/uuid"
)

// Store is a tenant: one seller's catalog. Every other entity carries the
// owning store id, and every mutation re-verifies UserID against the caller.
type Store struct {
	ID        uuid.UUID
	UserID    string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
