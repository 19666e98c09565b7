package commands

import (
	"context"

	"wishlink/internal/domain/guest"
	"wishlink/internal/domain/item"
	"wishlink/internal/infra"
	"wishlink/internal/pkg/errs"
	"wishlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddItemRequest struct {
	Name       string
	PriceCents int64
	ImageURL   *string
	ProductURL *string
}

type AddItemResult struct {
	ItemID uuid.UUID
}

type ToggleReservationResult struct {
	Reserved bool
}

type ItemCommands interface {
	AddItem(ctx context.Context, wishlistID uuid.UUID, req AddItemRequest, actorID uuid.UUID) (*AddItemResult, error)
	DeleteItem(ctx context.Context, itemID, actorID uuid.UUID) error
	// ToggleReservation claims the item for the viewer, or releases it when the
	// viewer already holds it. Concurrent toggles resolve last-writer-wins.
	ToggleReservation(ctx context.Context, itemID uuid.UUID, viewer guest.Identity) (*ToggleReservationResult, error)
}

type itemUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewItemUseCase(uow shared.UnitOfWork) ItemCommands {
	return &itemUseCaseImpl{uow: uow}
}

func (uc *itemUseCaseImpl) AddItem(ctx context.Context, wishlistID uuid.UUID, req AddItemRequest, actorID uuid.UUID) (*AddItemResult, error) {
	name, err := item.NewName(req.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	price, err := item.NewMoney(req.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().WishlistByID(ctx, wishlistID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrWishlistNotFound
			}
			return derr
		}
		if snap.OwnerID == nil || *snap.OwnerID != actorID {
			return errs.ErrWishlistNotOwned
		}

		it := item.NewItem(wishlistID, name, price, req.ImageURL, req.ProductURL)
		id, derr := tx.Items().Create(ctx, tx.DB(), it)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &AddItemResult{ItemID: createdID}, nil
}

func (uc *itemUseCaseImpl) DeleteItem(ctx context.Context, itemID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		itemSnap, err := tx.Reads().ItemByID(ctx, itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrItemNotFound
			}
			return err
		}

		listSnap, err := tx.Reads().WishlistByID(ctx, itemSnap.WishlistID)
		if err != nil {
			return err
		}
		if listSnap.OwnerID == nil || *listSnap.OwnerID != actorID {
			return errs.ErrWishlistNotOwned
		}
		return tx.Items().Delete(ctx, tx.DB(), itemID)
	})
}

func (uc *itemUseCaseImpl) ToggleReservation(ctx context.Context, itemID uuid.UUID, viewer guest.Identity) (*ToggleReservationResult, error) {
	if viewer.IsZero() {
		return nil, errs.ErrGuestTokenRequired
	}

	var reserved bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ItemByID(ctx, itemID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrItemNotFound
			}
			return derr
		}

		it, derr := snapshotToItem(snap)
		if derr != nil {
			return derr
		}

		holder := it.ToggleReservation(viewer)
		if derr := tx.Items().UpdateReservation(ctx, tx.DB(), itemID, holder); derr != nil {
			return derr
		}
		reserved = holder != nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ToggleReservationResult{Reserved: reserved}, nil
}

func snapshotToItem(snap *shared.ItemSnapshot) (*item.Item, error) {
	name, err := item.NewName(snap.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidItemState)
	}
	price, err := item.NewMoney(snap.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidItemState)
	}

	var reservedBy *guest.Identity
	if snap.ReservedByGuest != nil {
		id, gerr := guest.NewIdentity(*snap.ReservedByGuest)
		if gerr != nil {
			return nil, errs.Mark(gerr, errs.ErrInvalidItemState)
		}
		reservedBy = &id
	}
	return item.ReconstructItem(snap.ID, snap.WishlistID, name, price, nil, nil, reservedBy, snap.CreatedAt), nil
}
