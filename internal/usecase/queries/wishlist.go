package queries

import (
	"context"

	"wishlink/internal/domain/wishlist"
	"wishlink/internal/infra"
	"wishlink/internal/pkg/clock"
	"wishlink/internal/pkg/errs"

	"github.com/google/uuid"
)

type WishlistReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WishlistView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*WishlistView, error)
}

type WishlistQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*WishlistView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*WishlistView, error)
}

type wishlistQueriesImpl struct {
	repo  WishlistReadStore
	clock clock.Clock
}

func NewWishlistQueries(repo WishlistReadStore, clk clock.Clock) WishlistQueries {
	return &wishlistQueriesImpl{repo: repo, clock: clk}
}

func (q *wishlistQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*WishlistView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrWishlistNotFound
		}
		return nil, err
	}
	view.EventPassed = wishlist.EventPassed(view.EventDate, q.clock.Now())
	return view, nil
}

func (q *wishlistQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*WishlistView, error) {
	views, err := q.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.EventPassed = wishlist.EventPassed(v.EventDate, q.clock.Now())
	}
	return views, nil
}
