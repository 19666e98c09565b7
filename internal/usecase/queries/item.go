package queries

import (
	"context"

	"wishlink/internal/domain/contribution"
	"wishlink/internal/domain/guest"
	"wishlink/internal/domain/item"
	"wishlink/internal/pkg/errs"

	"github.com/google/uuid"
)

type ItemReadStore interface {
	// FindByWishlist returns items ordered by creation time ascending.
	FindByWishlist(ctx context.Context, wishlistID uuid.UUID) ([]*ItemRecord, error)
	FindContributionsByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*ContributionRecord, error)
}

type ItemQueries interface {
	// ListByWishlist derives per-item funding progress from the full
	// contribution set and resolves reservation state relative to the viewer.
	ListByWishlist(ctx context.Context, wishlistID uuid.UUID, viewer guest.Identity) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	repo ItemReadStore
}

func NewItemQueries(repo ItemReadStore) ItemQueries {
	return &itemQueriesImpl{repo: repo}
}

func (q *itemQueriesImpl) ListByWishlist(ctx context.Context, wishlistID uuid.UUID, viewer guest.Identity) ([]*ItemView, error) {
	records, err := q.repo.FindByWishlist(ctx, wishlistID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []*ItemView{}, nil
	}

	itemIDs := make([]uuid.UUID, 0, len(records))
	for _, rec := range records {
		itemIDs = append(itemIDs, rec.ID)
	}

	contribRows, err := q.repo.FindContributionsByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	byItem := make(map[uuid.UUID][]*contribution.Contribution, len(records))
	for _, row := range contribRows {
		c, cerr := toDomainContribution(row)
		if cerr != nil {
			return nil, errs.Wrap(cerr, "corrupt contribution row")
		}
		byItem[row.ItemID] = append(byItem[row.ItemID], c)
	}

	views := make([]*ItemView, 0, len(records))
	for _, rec := range records {
		view, verr := buildItemView(rec, byItem[rec.ID], viewer)
		if verr != nil {
			return nil, verr
		}
		views = append(views, view)
	}
	return views, nil
}

func buildItemView(rec *ItemRecord, contribs []*contribution.Contribution, viewer guest.Identity) (*ItemView, error) {
	domainItem, err := toDomainItem(rec)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidItemState)
	}

	progress, err := domainItem.ComputeProgress(contribs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidItemState)
	}

	return &ItemView{
		ID:                rec.ID,
		WishlistID:        rec.WishlistID,
		Name:              rec.Name,
		PriceCents:        rec.PriceCents,
		ImageURL:          rec.ImageURL,
		ProductURL:        rec.ProductURL,
		FundedAmountCents: progress.FundedAmount,
		FundedPercent:     progress.FundedPercent,
		IsFunded:          progress.IsFunded,
		Reserved:          domainItem.IsReserved(),
		ReservationState:  string(domainItem.ReservationStateFor(viewer)),
		CreatedAt:         rec.CreatedAt,
	}, nil
}

func toDomainItem(rec *ItemRecord) (*item.Item, error) {
	name, err := item.NewName(rec.Name)
	if err != nil {
		return nil, err
	}
	price, err := item.NewMoney(rec.PriceCents)
	if err != nil {
		return nil, err
	}

	var reservedBy *guest.Identity
	if rec.ReservedBy != nil {
		id, gerr := guest.NewIdentity(*rec.ReservedBy)
		if gerr != nil {
			return nil, gerr
		}
		reservedBy = &id
	}

	return item.ReconstructItem(rec.ID, rec.WishlistID, name, price, rec.ImageURL, rec.ProductURL, reservedBy, rec.CreatedAt), nil
}

func toDomainContribution(row *ContributionRecord) (*contribution.Contribution, error) {
	amount, err := contribution.NewAmountFromCents(row.AmountCents)
	if err != nil {
		return nil, err
	}
	guestID, err := guest.NewIdentity(row.GuestID)
	if err != nil {
		return nil, err
	}
	return contribution.ReconstructContribution(row.ID, row.ItemID, amount, row.ContributorName, guestID, row.CreatedAt), nil
}
