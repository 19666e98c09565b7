//go:build unit || e2e

package builder

import (
	"time"

	domwishlist "wishlink/internal/domain/wishlist"
	reqdto "wishlink/internal/handler/dto/request"
	"wishlink/internal/usecase/queries"
	"wishlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type WishlistBuilder struct {
	ID        uuid.UUID
	Title     string
	OwnerID   *uuid.UUID
	EventDate *time.Time
	CreatedAt time.Time
}

func NewWishlistBuilder() *WishlistBuilder {
	owner := uuid.New()
	return &WishlistBuilder{
		ID:        uuid.New(),
		Title:     "Birthday Wishlist",
		OwnerID:   &owner,
		CreatedAt: time.Now(),
	}
}

func (b *WishlistBuilder) With(mutate func(*WishlistBuilder)) *WishlistBuilder {
	mutate(b)
	return b
}

func (b *WishlistBuilder) WithEventDate(d time.Time) *WishlistBuilder {
	b.EventDate = &d
	return b
}

func (b *WishlistBuilder) BuildDomain() (*domwishlist.Wishlist, error) {
	title, err := domwishlist.NewTitle(b.Title)
	if err != nil {
		return nil, err
	}
	return domwishlist.NewWishlist(title, b.OwnerID, b.EventDate), nil
}

func (b *WishlistBuilder) BuildView() *queries.WishlistView {
	return &queries.WishlistView{
		ID:        b.ID,
		Title:     b.Title,
		OwnerID:   b.OwnerID,
		EventDate: b.EventDate,
		CreatedAt: b.CreatedAt,
	}
}

func (b *WishlistBuilder) BuildSnapshot() *shared.WishlistSnapshot {
	return &shared.WishlistSnapshot{
		ID:        b.ID,
		Title:     b.Title,
		OwnerID:   b.OwnerID,
		EventDate: b.EventDate,
		CreatedAt: b.CreatedAt,
	}
}

func (b *WishlistBuilder) BuildCreateRequestDTO() reqdto.CreateWishlistRequest {
	req := reqdto.CreateWishlistRequest{Title: b.Title}
	if b.EventDate != nil {
		d := b.EventDate.Format("2006-01-02")
		req.EventDate = &d
	}
	return req
}
