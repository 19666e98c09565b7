package item

import (
	"time"

	"wishlink/internal/domain/guest"

	"github.com/google/uuid"
)

type Item struct {
	id         uuid.UUID
	wishlistID uuid.UUID
	name       Name
	price      Money
	imageURL   *string
	productURL *string
	reservedBy *guest.Identity
	createdAt  time.Time
}

func NewItem(wishlistID uuid.UUID, name Name, price Money, imageURL, productURL *string) *Item {
	if productURL == nil {
		link := SearchLink(name.Value())
		productURL = &link
	}
	return &Item{
		id:         uuid.New(),
		wishlistID: wishlistID,
		name:       name,
		price:      price,
		imageURL:   imageURL,
		productURL: productURL,
	}
}

func ReconstructItem(
	id, wishlistID uuid.UUID,
	name Name,
	price Money,
	imageURL, productURL *string,
	reservedBy *guest.Identity,
	createdAt time.Time,
) *Item {
	return &Item{
		id:         id,
		wishlistID: wishlistID,
		name:       name,
		price:      price,
		imageURL:   imageURL,
		productURL: productURL,
		reservedBy: reservedBy,
		createdAt:  createdAt,
	}
}

func (i *Item) ID() uuid.UUID              { return i.id }
func (i *Item) WishlistID() uuid.UUID      { return i.wishlistID }
func (i *Item) Name() Name                 { return i.name }
func (i *Item) Price() Money               { return i.price }
func (i *Item) ImageURL() *string          { return i.imageURL }
func (i *Item) ProductURL() *string        { return i.productURL }
func (i *Item) ReservedBy() *guest.Identity { return i.reservedBy }
func (i *Item) CreatedAt() time.Time       { return i.createdAt }

func (i *Item) IsReserved() bool {
	return i.reservedBy != nil
}
