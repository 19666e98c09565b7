//go:build unit || e2e

package builder

import (
	"time"

	"wishlink/internal/domain/guest"
	domitem "wishlink/internal/domain/item"
	reqdto "wishlink/internal/handler/dto/request"
	"wishlink/internal/usecase/queries"
	"wishlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID         uuid.UUID
	WishlistID uuid.UUID
	Name       string
	PriceCents int64
	ImageURL   *string
	ProductURL *string
	ReservedBy *string
	CreatedAt  time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:         uuid.New(),
		WishlistID: uuid.New(),
		Name:       "Coffee Grinder",
		PriceCents: 5000,
		CreatedAt:  time.Now(),
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithReservedBy(guestID string) *ItemBuilder {
	b.ReservedBy = &guestID
	return b
}

func (b *ItemBuilder) BuildDomain() (*domitem.Item, error) {
	name, err := domitem.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	price, err := domitem.NewMoney(b.PriceCents)
	if err != nil {
		return nil, err
	}

	var reservedBy *guest.Identity
	if b.ReservedBy != nil {
		id, gerr := guest.NewIdentity(*b.ReservedBy)
		if gerr != nil {
			return nil, gerr
		}
		reservedBy = &id
	}
	return domitem.ReconstructItem(b.ID, b.WishlistID, name, price, b.ImageURL, b.ProductURL, reservedBy, b.CreatedAt), nil
}

func (b *ItemBuilder) BuildRecord() *queries.ItemRecord {
	return &queries.ItemRecord{
		ID:         b.ID,
		WishlistID: b.WishlistID,
		Name:       b.Name,
		PriceCents: b.PriceCents,
		ImageURL:   b.ImageURL,
		ProductURL: b.ProductURL,
		ReservedBy: b.ReservedBy,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *ItemBuilder) BuildSnapshot() *shared.ItemSnapshot {
	return &shared.ItemSnapshot{
		ID:              b.ID,
		WishlistID:      b.WishlistID,
		Name:            b.Name,
		PriceCents:      b.PriceCents,
		ReservedByGuest: b.ReservedBy,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *ItemBuilder) BuildAddRequestDTO() reqdto.AddItemRequest {
	return reqdto.AddItemRequest{
		Name:       b.Name,
		PriceCents: b.PriceCents,
		ImageURL:   b.ImageURL,
		ProductURL: b.ProductURL,
	}
}
