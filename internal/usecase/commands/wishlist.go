package commands

import (
	"context"
	"time"

	"wishlink/internal/domain/wishlist"
	"wishlink/internal/infra"
	"wishlink/internal/pkg/errs"
	"wishlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateWishlistRequest struct {
	Title     string
	EventDate *time.Time
}

type CreateWishlistResult struct {
	WishlistID uuid.UUID
}

type WishlistCommands interface {
	CreateWishlist(ctx context.Context, req CreateWishlistRequest, ownerID uuid.UUID) (*CreateWishlistResult, error)
	DeleteWishlist(ctx context.Context, wishlistID, actorID uuid.UUID) error
}

type wishlistUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewWishlistUseCase(uow shared.UnitOfWork) WishlistCommands {
	return &wishlistUseCaseImpl{uow: uow}
}

func (uc *wishlistUseCaseImpl) CreateWishlist(ctx context.Context, req CreateWishlistRequest, ownerID uuid.UUID) (*CreateWishlistResult, error) {
	title, err := wishlist.NewTitle(req.Title)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		w := wishlist.NewWishlist(title, &ownerID, req.EventDate)
		id, derr := tx.Wishlists().Create(ctx, tx.DB(), w)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateWishlistResult{WishlistID: createdID}, nil
}

// DeleteWishlist cascades to the list's items and their contributions.
func (uc *wishlistUseCaseImpl) DeleteWishlist(ctx context.Context, wishlistID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().WishlistByID(ctx, wishlistID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrWishlistNotFound
			}
			return err
		}
		if snap.OwnerID == nil || *snap.OwnerID != actorID {
			return errs.ErrWishlistNotOwned
		}
		return tx.Wishlists().Delete(ctx, tx.DB(), wishlistID)
	})
}
