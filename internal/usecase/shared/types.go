package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
type WishlistSnapshot struct {
	ID        uuid.UUID
	Title     string
	OwnerID   *uuid.UUID
	EventDate *time.Time
	CreatedAt time.Time
}

type ItemSnapshot struct {
	ID              uuid.UUID
	WishlistID      uuid.UUID
	Name            string
	PriceCents      int64
	ReservedByGuest *string
	CreatedAt       time.Time
}
