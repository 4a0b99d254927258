package models

import (
	"time"

	"github.com/google/uuid"
)

// Image is a row mirroring a blob on the media host. It is owned by exactly
// one billboard (0..1) or one product (0..N); the DB enforces that at least
// one owner is set.
type Image struct {
	ID          uuid.UUID
	BillboardID uuid.NullUUID
	ProductID   uuid.NullUUID
	URL         string
	PublicID    string
	Name        string
	Format      string
	Size        int64
	CreatedAt   time.Time
}
