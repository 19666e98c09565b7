package queries

import (
	"time"

	"github.com/google/uuid"
)

// WishlistView represents read-optimized wishlist data
type WishlistView struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	EventPassed bool       `json:"event_passed"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ItemRecord is a raw item row before funding figures are derived.
type ItemRecord struct {
	ID         uuid.UUID
	WishlistID uuid.UUID
	Name       string
	PriceCents int64
	ImageURL   *string
	ProductURL *string
	ReservedBy *string
	CreatedAt  time.Time
}

// ContributionRecord is a raw contribution row.
type ContributionRecord struct {
	ID              uuid.UUID
	ItemID          uuid.UUID
	AmountCents     int64
	ContributorName string
	GuestID         string
	CreatedAt       time.Time
}

// ItemView is what guests and owners see: the item plus its derived funding
// progress and the viewer-relative reservation state.
type ItemView struct {
	ID                uuid.UUID `json:"id"`
	WishlistID        uuid.UUID `json:"wishlist_id"`
	Name              string    `json:"name"`
	PriceCents        int64     `json:"price_cents"`
	ImageURL          *string   `json:"image_url,omitempty"`
	ProductURL        *string   `json:"product_url,omitempty"`
	FundedAmountCents int64     `json:"funded_amount_cents"`
	FundedPercent     float64   `json:"funded_percent"`
	IsFunded          bool      `json:"is_funded"`
	Reserved          bool      `json:"reserved"`
	ReservationState  string    `json:"reservation_state"`
	CreatedAt         time.Time `json:"created_at"`
}
