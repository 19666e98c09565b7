package contribution

import (
	"errors"
	"math"
	"strings"
	"time"

	"wishlink/internal/domain/guest"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("amount must be a positive finite number")
	ErrNoGuestID     = errors.New("contributor identity is required")
)

// DefaultContributorName is used when the contributor leaves the name blank.
const DefaultContributorName = "Guest"

// Amount is a monetary value in minor units (cents). The constructor takes a
// float so that non-finite inputs are rejected explicitly instead of being
// truncated into a bogus integer.
type Amount struct {
	cents int64
}

func NewAmount(cents float64) (Amount, error) {
	if math.IsNaN(cents) || math.IsInf(cents, 0) {
		return Amount{}, ErrInvalidAmount
	}
	if cents <= 0 {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{cents: int64(math.Round(cents))}, nil
}

func NewAmountFromCents(cents int64) (Amount, error) {
	if cents <= 0 {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{cents: cents}, nil
}

func (a Amount) Cents() int64 {
	return a.cents
}

// Contribution is an immutable pledge toward an item. It is never updated or
// deleted once persisted, which keeps an item's funded amount monotonically
// non-decreasing.
type Contribution struct {
	id              uuid.UUID
	itemID          uuid.UUID
	amount          Amount
	contributorName string
	guestID         guest.Identity
	createdAt       time.Time
}

func NewContribution(itemID uuid.UUID, amountCents float64, contributorName string, guestID guest.Identity) (*Contribution, error) {
	amount, err := NewAmount(amountCents)
	if err != nil {
		return nil, err
	}
	if guestID.IsZero() {
		return nil, ErrNoGuestID
	}

	name := strings.TrimSpace(contributorName)
	if name == "" {
		name = DefaultContributorName
	}

	return &Contribution{
		id:              uuid.New(),
		itemID:          itemID,
		amount:          amount,
		contributorName: name,
		guestID:         guestID,
	}, nil
}

func ReconstructContribution(id, itemID uuid.UUID, amount Amount, contributorName string, guestID guest.Identity, createdAt time.Time) *Contribution {
	return &Contribution{
		id:              id,
		itemID:          itemID,
		amount:          amount,
		contributorName: contributorName,
		guestID:         guestID,
		createdAt:       createdAt,
	}
}

func (c *Contribution) ID() uuid.UUID           { return c.id }
func (c *Contribution) ItemID() uuid.UUID       { return c.itemID }
func (c *Contribution) Amount() Amount          { return c.amount }
func (c *Contribution) ContributorName() string { return c.contributorName }
func (c *Contribution) GuestID() guest.Identity { return c.guestID }
func (c *Contribution) CreatedAt() time.Time    { return c.createdAt }
